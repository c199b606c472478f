package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"cvgen-utils/internal/config"
	"cvgen-utils/internal/logging"
	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ask sends a single-turn prompt to Claude and returns the raw text response
func (cp *ClaudeProvider) Ask(ctx context.Context, prompt string, opts models.AskOptions) (string, error) {
	startTime := time.Now()

	client := cp.client
	if opts.APIKey != "" {
		client = anthropic.NewClient(option.WithAPIKey(opts.APIKey))
	}

	model := cp.config.LLM.Model
	if opts.Model != "" {
		model = opts.Model
	}

	maxTokens := cp.config.LLM.MaxTokens
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}

	cp.logger.Info("Sending prompt to Claude", map[string]interface{}{
		"model":         model,
		"prompt_length": len(prompt),
		"provider":      "claude",
	})

	response, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", utils.NewUpstreamError(fmt.Sprintf("claude request failed: %v", err))
	}

	var sb strings.Builder
	for _, block := range response.Content {
		sb.WriteString(block.AsText().Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", utils.NewMalformedAIResponseError("claude returned an empty response")
	}

	cp.logger.Info("Claude response received", map[string]interface{}{
		"model":           model,
		"response_length": len(text),
		"processing_time": time.Since(startTime).String(),
		"provider":        "claude",
	})

	return text, nil
}

// IsHealthy checks whether the provider is usable. A missing API key is the
// only local failure mode; no billable call is made.
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("claude API key not configured (set LLM_API_KEY environment variable)")
	}
	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
