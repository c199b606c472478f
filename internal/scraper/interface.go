package scraper

import (
	"context"

	"cvgen-utils/pkg/models"
)

// Scraper defines the interface for all job posting fetch engines
type Scraper interface {
	// ScrapeJob fetches a job posting from the given URL
	ScrapeJob(ctx context.Context, url string, options *models.ScrapeOptions) (*models.JobPosting, error)

	// Cleanup releases any resources used by the scraper
	Cleanup()

	// IsHealthy returns true if the scraper is ready to process requests
	IsHealthy() bool
}

// ScraperFactory creates scrapers based on engine type
type ScraperFactory interface {
	// CreateScraper creates a new scraper instance for the given engine
	CreateScraper(engine string) (Scraper, error)

	// GetSupportedEngines returns a list of supported engine types
	GetSupportedEngines() []string
}
