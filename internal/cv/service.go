package cv

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"cvgen-utils/internal/logging"
	"cvgen-utils/internal/pipeline"
	"cvgen-utils/internal/scraper"
	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// Source value used when the caller pasted the job description instead of a URL
const manualJobSource = "manual-job-description"

// Fallbacks used when neither the posting nor the request names the target
const (
	fallbackRole    = "Target Role"
	fallbackCompany = "Target Company"
)

// ProfileSource yields the stored candidate profile that generation requires
type ProfileSource interface {
	Require(ctx context.Context) (*models.Profile, error)
}

// Completer is the LLM surface the service depends on
type Completer interface {
	Ask(ctx context.Context, prompt string, opts models.AskOptions) (string, error)
}

// Service orchestrates the generation pipeline: job acquisition, prompt
// building, the LLM round trip, and the profile-authoritative merge
type Service struct {
	profiles ProfileSource
	llm      Completer
	scrapers scraper.ScraperFactory
	prompts  *pipeline.PromptBuilder
	logger   logging.Logger
}

// NewService creates a generation service
func NewService(profiles ProfileSource, llm Completer, scrapers scraper.ScraperFactory) *Service {
	return &Service{
		profiles: profiles,
		llm:      llm,
		scrapers: scrapers,
		prompts:  pipeline.NewPromptBuilder(),
		logger:   logging.GetGlobalLogger(),
	}
}

// GenerateData runs the full generation pipeline and returns the merged
// content model, plus the optional cover letter and email artifacts. The
// profile precondition is checked first, then the job input; both run before
// any scrape or LLM call.
func (s *Service) GenerateData(ctx context.Context, req *models.GenerateDataRequest) (*models.GenerateDataResponse, error) {
	profile, err := s.profiles.Require(ctx)
	if err != nil {
		return nil, err
	}

	manualDescription := utils.CleanOptionalText(req.JobDescription)
	if req.URL == "" && manualDescription == "" {
		return nil, utils.NewInvalidInputError("either url or job_description is required")
	}

	jobDescription := manualDescription
	source := manualJobSource
	roleTitle := utils.CleanOptionalText(req.JobRole)
	companyName := utils.CleanOptionalText(req.CompanyName)

	if req.URL != "" {
		posting, err := s.fetchPosting(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		jobDescription = posting.Description
		source = req.URL
		if roleTitle == "" {
			roleTitle = strings.TrimSpace(posting.Title)
		}
		if companyName == "" {
			companyName = strings.TrimSpace(posting.Company)
		}
	}

	if strings.TrimSpace(jobDescription) == "" {
		return nil, utils.NewExtractionFailedError("job posting contained no description")
	}

	fullName := utils.GetStringOrDefault(req.FullName, profile.FullName)
	if roleTitle == "" {
		roleTitle = utils.GetStringOrDefault(profile.Title, fallbackRole)
	}
	if companyName == "" {
		companyName = fallbackCompany
	}

	bundle := req.GenerateCoverLetter || req.GenerateEmailMessage

	var prompt string
	if bundle {
		prompt = s.prompts.BuildBundlePrompt(profile, jobDescription, pipeline.BundleOptions{
			FullName:           fullName,
			RoleTitle:          roleTitle,
			CompanyName:        companyName,
			CoverLetter:        req.GenerateCoverLetter,
			EmailMessage:       req.GenerateEmailMessage,
			CVPrompt:           req.Prompt,
			CoverLetterPrompt:  req.CoverLetterPrompt,
			EmailMessagePrompt: req.EmailMessagePrompt,
		})
	} else {
		prompt = s.prompts.BuildCVPrompt(profile, jobDescription, req.Prompt)
	}

	startTime := time.Now()
	raw, err := s.llm.Ask(ctx, prompt, models.AskOptions{
		Model:  req.Model,
		APIKey: req.APIKey,
	})
	if err != nil {
		return nil, err
	}

	payload, err := pipeline.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	sectionsPayload := payload
	if inner, ok := payload["sections"]; ok {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(inner, &nested); err != nil || nested == nil {
			return nil, utils.NewMalformedAIResponseError("sections key is not a JSON object")
		}
		sectionsPayload = nested
	}

	sections, err := pipeline.Merge(sectionsPayload, profile)
	if err != nil {
		return nil, err
	}

	resp := &models.GenerateDataResponse{
		FullName:    fullName,
		CompanyName: companyName,
		RoleTitle:   roleTitle,
		Source:      source,
		Sections:    *sections,
	}

	if req.GenerateCoverLetter {
		resp.CoverLetter = decodeCoverLetter(payload["cover_letter"])
	}
	if req.GenerateEmailMessage {
		if email := decodeEmailMessage(payload["email_message"]); email != nil {
			resp.EmailMessage = email
		}
	}

	s.logger.Info("Generation completed", map[string]interface{}{
		"source":          source,
		"role_title":      roleTitle,
		"company_name":    companyName,
		"cover_letter":    req.GenerateCoverLetter,
		"email_message":   req.GenerateEmailMessage,
		"processing_time": time.Since(startTime).String(),
	})

	return resp, nil
}

// ExtractJob fetches the raw posting for a URL without running generation
func (s *Service) ExtractJob(ctx context.Context, url string) (*models.JobPosting, error) {
	return s.fetchPosting(ctx, url)
}

func (s *Service) fetchPosting(ctx context.Context, url string) (*models.JobPosting, error) {
	engine := scraper.ResolveEngine(url)
	engineScraper, err := s.scrapers.CreateScraper(engine)
	if err != nil {
		return nil, utils.NewUpstreamError(err.Error())
	}
	if engineScraper == nil {
		return nil, utils.NewUpstreamError("scraping engine " + engine + " failed to initialize")
	}
	defer engineScraper.Cleanup()

	posting, err := engineScraper.ScrapeJob(ctx, url, &models.ScrapeOptions{Engine: engine})
	if err != nil {
		if _, ok := err.(*utils.CustomError); ok {
			return nil, err
		}
		return nil, utils.NewUpstreamError(err.Error())
	}
	return posting, nil
}

// decodeCoverLetter tolerates both a bare string and a null for the
// cover_letter key
func decodeCoverLetter(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return strings.TrimSpace(strings.Trim(string(raw), "\"`"))
	}
	return strings.TrimSpace(text)
}

// decodeEmailMessage accepts the structured {subject, body} object, a bare
// string, or null. Strings go through the email normalizer.
func decodeEmailMessage(raw json.RawMessage) *models.EmailMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var email models.EmailMessage
	if err := json.Unmarshal(raw, &email); err == nil && (email.Subject != "" || email.Body != "") {
		email.Subject = strings.TrimSpace(email.Subject)
		email.Body = strings.TrimSpace(email.Body)
		return &email
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		text = string(raw)
	}
	normalized := pipeline.NormalizeEmailMessage(text)
	if normalized.Subject == "" && normalized.Body == "" {
		return nil
	}
	return &normalized
}
