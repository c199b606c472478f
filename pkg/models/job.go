package models

import (
	"encoding/json"
	"time"
)

// JobPosting is the normalized output of a scraping engine: the fields the
// generation pipeline needs, plus the raw upstream payload for callers that
// want to inspect it
type JobPosting struct {
	SourceURL   string          `json:"source_url"`
	JobID       string          `json:"job_id,omitempty"`
	Title       string          `json:"title,omitempty"`
	Company     string          `json:"company,omitempty"`
	Description string          `json:"description,omitempty"`
	Raw         json.RawMessage `json:"raw,omitempty"`
	Engine      string          `json:"engine"`
	FetchedAt   time.Time       `json:"fetched_at"`
}

// ScrapeOptions provides additional configuration for scraping requests
type ScrapeOptions struct {
	Engine  string        `json:"engine,omitempty"` // "apify", "firecrawl", "auto"
	Timeout time.Duration `json:"timeout,omitempty"`
}
