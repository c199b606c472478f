package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"cvgen-utils/internal/config"
	"cvgen-utils/internal/logging"
	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// ApifyScraper fetches LinkedIn job postings through an Apify dataset actor.
// The actor is run synchronously and its dataset items are returned in the
// response body.
type ApifyScraper struct {
	config *config.Config
	client *http.Client
	logger logging.Logger
}

// NewApifyScraper creates a new Apify scraper instance
func NewApifyScraper(cfg *config.Config) *ApifyScraper {
	return &ApifyScraper{
		config: cfg,
		client: &http.Client{Timeout: cfg.Apify.Timeout},
		logger: logging.GetGlobalLogger(),
	}
}

// ScrapeJob fetches a LinkedIn job posting by its numeric job ID
func (a *ApifyScraper) ScrapeJob(ctx context.Context, url string, options *models.ScrapeOptions) (*models.JobPosting, error) {
	jobID, err := utils.ExtractLinkedInJobID(url)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Starting Apify job fetch", map[string]interface{}{
		"url":    url,
		"job_id": jobID,
		"actor":  a.config.Apify.Actor,
	})

	item, err := a.runActor(ctx, jobID, options)
	if err != nil {
		return nil, err
	}

	description := firstNonEmpty(item,
		"job_info.description",
		"description",
		"job_description",
		"descriptionText",
		"description_text",
	)
	if strings.TrimSpace(description) == "" {
		return nil, utils.NewExtractionFailedError("job posting contained no description")
	}

	posting := &models.JobPosting{
		SourceURL:   url,
		JobID:       jobID,
		Title:       firstNonEmpty(item, "job_info.title", "title", "job_title"),
		Company:     firstNonEmpty(item, "company_info.name", "company_name", "company", "companyName"),
		Description: stripHTML(description),
		Engine:      "apify",
		FetchedAt:   time.Now(),
	}
	if raw, err := json.Marshal(item); err == nil {
		posting.Raw = raw
	}

	a.logger.Info("Apify job fetch completed", map[string]interface{}{
		"job_id":             jobID,
		"title":              posting.Title,
		"company":            posting.Company,
		"description_length": len(posting.Description),
	})

	return posting, nil
}

// runActor invokes the actor's run-sync-get-dataset-items endpoint and
// returns the first dataset item
func (a *ApifyScraper) runActor(ctx context.Context, jobID string, options *models.ScrapeOptions) (map[string]interface{}, error) {
	if a.config.Apify.Token == "" {
		return nil, utils.NewUpstreamError("apify token not configured (set APIFY_TOKEN environment variable)")
	}

	endpoint := fmt.Sprintf("%s/acts/%s/run-sync-get-dataset-items",
		strings.TrimRight(a.config.Apify.BaseURL, "/"),
		neturl.PathEscape(a.config.Apify.Actor),
	)
	endpoint += "?token=" + neturl.QueryEscape(a.config.Apify.Token)

	payload, _ := json.Marshal(map[string]interface{}{
		"job_id": []string{jobID},
	})

	if options != nil && options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create apify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, utils.NewUpstreamError(fmt.Sprintf("apify request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.NewUpstreamError(fmt.Sprintf("failed to read apify response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.Warn("Apify actor run failed", map[string]interface{}{
			"status_code": resp.StatusCode,
			"job_id":      jobID,
		})
		return nil, utils.NewUpstreamError(fmt.Sprintf("apify actor returned status %d", resp.StatusCode))
	}

	// The dataset endpoint returns a JSON array; a bare object is tolerated
	var items []map[string]interface{}
	if err := json.Unmarshal(body, &items); err != nil {
		var single map[string]interface{}
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, utils.NewExtractionFailedError("apify response was not valid JSON")
		}
		items = []map[string]interface{}{single}
	}

	if len(items) == 0 {
		return nil, utils.NewExtractionFailedError("apify dataset was empty for job " + jobID)
	}

	return items[0], nil
}

// Cleanup releases any resources used by the scraper
func (a *ApifyScraper) Cleanup() {
	a.logger.Info("Cleaning up Apify scraper resources")
}

// IsHealthy checks if the scraper is configured and ready
func (a *ApifyScraper) IsHealthy() bool {
	return a.config.Apify.Token != "" && a.config.Apify.Actor != ""
}

// firstNonEmpty tries each dotted path against the item and returns the first
// non-empty string value. Actor payload shapes vary between versions, hence
// the ordered candidates.
func firstNonEmpty(item map[string]interface{}, paths ...string) string {
	for _, path := range paths {
		if value := lookupString(item, path); strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func lookupString(item map[string]interface{}, path string) string {
	current := interface{}(item)
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return ""
		}
		current, ok = m[key]
		if !ok {
			return ""
		}
	}
	value, _ := current.(string)
	return value
}

// stripHTML flattens markup in a description to plain text. Non-HTML content
// passes through unchanged.
func stripHTML(content string) string {
	if !strings.Contains(content, "<") {
		return content
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return content
	}
	return text
}
