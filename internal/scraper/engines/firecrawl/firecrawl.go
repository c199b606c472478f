package firecrawl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mendableai/firecrawl-go"

	"cvgen-utils/internal/config"
	"cvgen-utils/internal/logging"
	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// FirecrawlScraper fetches job postings from arbitrary URLs using the
// Firecrawl API. The markdown rendering of the page becomes the job
// description.
type FirecrawlScraper struct {
	config *config.Config
	app    *firecrawl.FirecrawlApp
	logger logging.Logger
}

// NewFirecrawlScraper creates a new Firecrawl scraper instance
func NewFirecrawlScraper(cfg *config.Config) *FirecrawlScraper {
	logger := logging.GetGlobalLogger()

	app, err := firecrawl.NewFirecrawlApp(
		cfg.Firecrawl.APIKey,
		cfg.Firecrawl.APIURL,
	)
	if err != nil {
		logger.Error("Failed to initialize Firecrawl", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	return &FirecrawlScraper{
		config: cfg,
		app:    app,
		logger: logger,
	}
}

// ScrapeJob fetches a job posting page and returns its content as the
// description of a normalized posting
func (f *FirecrawlScraper) ScrapeJob(ctx context.Context, url string, options *models.ScrapeOptions) (*models.JobPosting, error) {
	f.logger.Info("Starting Firecrawl job fetch", map[string]interface{}{
		"url": url,
	})

	content, err := f.scrapeContent(ctx, url)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, utils.NewExtractionFailedError("scraped page contained no content")
	}

	posting := &models.JobPosting{
		SourceURL:   url,
		Description: content,
		Engine:      "firecrawl",
		FetchedAt:   time.Now(),
	}

	f.logger.Info("Firecrawl job fetch completed", map[string]interface{}{
		"url":            url,
		"content_length": len(content),
	})
	return posting, nil
}

// scrapeContent performs the actual Firecrawl scraping with retries
func (f *FirecrawlScraper) scrapeContent(ctx context.Context, url string) (string, error) {
	scrapeParams := &firecrawl.ScrapeParams{
		Formats: f.config.Firecrawl.Formats,
	}

	var scrapeResult *firecrawl.FirecrawlDocument
	var err error

	for attempt := 1; attempt <= f.config.Firecrawl.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		scrapeResult, err = f.app.ScrapeURL(url, scrapeParams)
		if err == nil {
			break
		}

		f.logger.Info("Firecrawl scrape attempt failed", map[string]interface{}{
			"attempt":     attempt,
			"max_retries": f.config.Firecrawl.MaxRetries,
			"url":         url,
			"error":       err.Error(),
		})

		if attempt < f.config.Firecrawl.MaxRetries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	if err != nil {
		return "", utils.NewUpstreamError(fmt.Sprintf("firecrawl scraping failed after %d attempts: %v", f.config.Firecrawl.MaxRetries, err))
	}
	if scrapeResult == nil {
		return "", utils.NewUpstreamError("no result returned from Firecrawl")
	}

	if scrapeResult.Markdown != "" {
		return scrapeResult.Markdown, nil
	}
	if scrapeResult.HTML != "" {
		return scrapeResult.HTML, nil
	}
	return "", utils.NewExtractionFailedError("no content found in Firecrawl response")
}

// Cleanup releases any resources used by the scraper
func (f *FirecrawlScraper) Cleanup() {
	f.logger.Info("Cleaning up Firecrawl scraper resources")
}

// IsHealthy checks if the scraper is configured and ready
func (f *FirecrawlScraper) IsHealthy() bool {
	return f.app != nil && f.config.Firecrawl.APIKey != ""
}
