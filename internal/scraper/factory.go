package scraper

import (
	"fmt"

	"cvgen-utils/internal/config"
	"cvgen-utils/internal/scraper/engines/apify"
	"cvgen-utils/internal/scraper/engines/firecrawl"
	"cvgen-utils/pkg/utils"
)

// DefaultScraperFactory implements ScraperFactory
type DefaultScraperFactory struct {
	config *config.Config
}

// NewScraperFactory creates a new scraper factory
func NewScraperFactory(cfg *config.Config) ScraperFactory {
	return &DefaultScraperFactory{
		config: cfg,
	}
}

// ResolveEngine picks the engine for a URL when the caller asked for "auto".
// LinkedIn job postings go through the Apify dataset actor, everything else
// through Firecrawl.
func ResolveEngine(url string) string {
	if utils.IsLinkedInURL(url) {
		return "apify"
	}
	return "firecrawl"
}

// CreateScraper creates a new scraper instance for the given engine
func (f *DefaultScraperFactory) CreateScraper(engine string) (Scraper, error) {
	switch engine {
	case "apify":
		return apify.NewApifyScraper(f.config), nil
	case "firecrawl":
		return firecrawl.NewFirecrawlScraper(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported scraping engine: %s", engine)
	}
}

// GetSupportedEngines returns a list of supported engine types
func (f *DefaultScraperFactory) GetSupportedEngines() []string {
	return []string{"apify", "firecrawl", "auto"}
}
