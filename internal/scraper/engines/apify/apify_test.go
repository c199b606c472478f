package apify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cvgen-utils/internal/config"
	"cvgen-utils/pkg/utils"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Apify.Token = "test-token"
	cfg.Apify.Actor = "apimaestro~linkedin-job-detail"
	cfg.Apify.BaseURL = baseURL
	return cfg
}

func TestScrapeJobExtractsNestedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "test-token" {
			t.Errorf("missing token query param")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"job_info": {"title": "Platform Engineer", "description": "<p>Run the platform.<br>Own the pager.</p>"},
			"company_info": {"name": "Initech"}
		}]`))
	}))
	defer server.Close()

	s := NewApifyScraper(testConfig(server.URL))
	posting, err := s.ScrapeJob(context.Background(), "https://www.linkedin.com/jobs/view/4012345678", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if posting.JobID != "4012345678" {
		t.Errorf("job id = %q", posting.JobID)
	}
	if posting.Title != "Platform Engineer" || posting.Company != "Initech" {
		t.Errorf("title/company = %q / %q", posting.Title, posting.Company)
	}
	if posting.Engine != "apify" {
		t.Errorf("engine = %q", posting.Engine)
	}
	// HTML markup is flattened to text
	if posting.Description == "" || posting.Description[0] == '<' {
		t.Errorf("description not stripped: %q", posting.Description)
	}
}

func TestScrapeJobFlatPayloadShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title": "Go Developer", "company_name": "Acme", "description": "Write Go."}]`))
	}))
	defer server.Close()

	s := NewApifyScraper(testConfig(server.URL))
	posting, err := s.ScrapeJob(context.Background(), "https://www.linkedin.com/jobs/view/111", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posting.Title != "Go Developer" || posting.Company != "Acme" || posting.Description != "Write Go." {
		t.Errorf("got %+v", posting)
	}
}

func TestScrapeJobEmptyDataset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	s := NewApifyScraper(testConfig(server.URL))
	_, err := s.ScrapeJob(context.Background(), "https://www.linkedin.com/jobs/view/111", nil)
	if !utils.IsKind(err, utils.KindExtractionFailed) {
		t.Errorf("expected extraction failed error, got %v", err)
	}
}

func TestScrapeJobMissingDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title": "Go Developer"}]`))
	}))
	defer server.Close()

	s := NewApifyScraper(testConfig(server.URL))
	_, err := s.ScrapeJob(context.Background(), "https://www.linkedin.com/jobs/view/111", nil)
	if !utils.IsKind(err, utils.KindExtractionFailed) {
		t.Errorf("expected extraction failed error, got %v", err)
	}
}

func TestScrapeJobUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "actor exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	s := NewApifyScraper(testConfig(server.URL))
	_, err := s.ScrapeJob(context.Background(), "https://www.linkedin.com/jobs/view/111", nil)
	if !utils.IsKind(err, utils.KindUpstream) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestScrapeJobRejectsURLWithoutJobID(t *testing.T) {
	s := NewApifyScraper(testConfig("http://unused"))
	_, err := s.ScrapeJob(context.Background(), "https://www.linkedin.com/feed/", nil)
	if !utils.IsKind(err, utils.KindInvalidInput) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestLookupString(t *testing.T) {
	item := map[string]interface{}{
		"a": map[string]interface{}{"b": "value"},
		"c": "top",
	}
	if got := lookupString(item, "a.b"); got != "value" {
		t.Errorf("lookupString(a.b) = %q", got)
	}
	if got := lookupString(item, "c"); got != "top" {
		t.Errorf("lookupString(c) = %q", got)
	}
	if got := lookupString(item, "a.missing"); got != "" {
		t.Errorf("lookupString(a.missing) = %q", got)
	}
}
