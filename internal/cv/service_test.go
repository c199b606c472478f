package cv

import (
	"context"
	"testing"
	"time"

	"cvgen-utils/internal/scraper"
	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

type fakeProfiles struct {
	profile *models.Profile
	err     error
	calls   int
}

func (f *fakeProfiles) Require(ctx context.Context) (*models.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type fakeLLM struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeLLM) Ask(ctx context.Context, prompt string, opts models.AskOptions) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeScraper struct {
	posting *models.JobPosting
	err     error
	calls   int
}

func (f *fakeScraper) ScrapeJob(ctx context.Context, url string, options *models.ScrapeOptions) (*models.JobPosting, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.posting, nil
}

func (f *fakeScraper) Cleanup()        {}
func (f *fakeScraper) IsHealthy() bool { return true }

type fakeFactory struct {
	scraper *fakeScraper
	engines []string
}

func (f *fakeFactory) CreateScraper(engine string) (scraper.Scraper, error) {
	f.engines = append(f.engines, engine)
	return f.scraper, nil
}

func (f *fakeFactory) GetSupportedEngines() []string {
	return []string{"apify", "firecrawl", "auto"}
}

func serviceProfile() *models.Profile {
	return &models.Profile{
		FullName: "Ada Lovelace",
		Title:    "Senior Backend Engineer",
		Email:    "ada@example.com",
		ProfessionalExperience: []models.ProfileExperience{
			{
				Title:       "Senior Backend Engineer",
				Company:     "Analytical Engines Ltd",
				Duration:    "2021 - Present",
				Description: "Built the calculation platform.",
			},
		},
		Education: models.ProfileEducation{Degree: "BSc Mathematics", Institution: "University of London"},
	}
}

const sectionsJSON = `{
	"header": {"full_name": "Ada Lovelace"},
	"professional_summary": "Backend engineer.",
	"core_skills": {"languages_frameworks": ["Go"]},
	"professional_experience": [{"highlights": ["Shipped the platform"]}],
	"personal_projects": []
}`

func newTestService(profiles *fakeProfiles, llm *fakeLLM, factory *fakeFactory) *Service {
	if factory == nil {
		factory = &fakeFactory{scraper: &fakeScraper{}}
	}
	return NewService(profiles, llm, factory)
}

func TestGenerateDataRejectsEmptyInputBeforeOutboundCalls(t *testing.T) {
	profiles := &fakeProfiles{profile: serviceProfile()}
	llm := &fakeLLM{response: sectionsJSON}
	factory := &fakeFactory{scraper: &fakeScraper{}}
	svc := newTestService(profiles, llm, factory)

	_, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{})
	if !utils.IsKind(err, utils.KindInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if llm.calls != 0 {
		t.Error("LLM must not be called for invalid input")
	}
	if factory.scraper.calls != 0 {
		t.Error("scraper must not be called for invalid input")
	}
}

func TestGenerateDataTreatsPlaceholderDescriptionAsEmpty(t *testing.T) {
	svc := newTestService(&fakeProfiles{profile: serviceProfile()}, &fakeLLM{response: sectionsJSON}, nil)

	_, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{JobDescription: "none"})
	if !utils.IsKind(err, utils.KindInvalidInput) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestGenerateDataRequiresProfile(t *testing.T) {
	profiles := &fakeProfiles{err: utils.NewProfileNotFoundError()}
	llm := &fakeLLM{response: sectionsJSON}
	svc := newTestService(profiles, llm, nil)

	_, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{
		JobDescription: "We need a Go engineer.",
	})
	if !utils.IsKind(err, utils.KindProfileNotFound) {
		t.Fatalf("expected profile not found error, got %v", err)
	}
	if llm.calls != 0 {
		t.Error("LLM must not be called without a profile")
	}
}

func TestGenerateDataMissingProfileReportedBeforeEmptyInput(t *testing.T) {
	profiles := &fakeProfiles{err: utils.NewProfileNotFoundError()}
	svc := newTestService(profiles, &fakeLLM{}, nil)

	_, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{})
	if !utils.IsKind(err, utils.KindProfileNotFound) {
		t.Errorf("expected profile not found error, got %v", err)
	}
}

func TestGenerateDataManualDescription(t *testing.T) {
	profiles := &fakeProfiles{profile: serviceProfile()}
	llm := &fakeLLM{response: sectionsJSON}
	factory := &fakeFactory{scraper: &fakeScraper{}}
	svc := newTestService(profiles, llm, factory)

	resp, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{
		JobDescription: "We need a Go engineer.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Source != "manual-job-description" {
		t.Errorf("source = %q", resp.Source)
	}
	if resp.FullName != "Ada Lovelace" {
		t.Errorf("full name = %q", resp.FullName)
	}
	// No role in the request or posting: profile title is the fallback
	if resp.RoleTitle != "Senior Backend Engineer" {
		t.Errorf("role title = %q", resp.RoleTitle)
	}
	if resp.CompanyName != "Target Company" {
		t.Errorf("company name = %q", resp.CompanyName)
	}
	if factory.scraper.calls != 0 {
		t.Error("scraper must not run for a manual description")
	}

	exp := resp.Sections.ProfessionalExperience
	if len(exp) != 1 || exp[0].Company != "Analytical Engines Ltd" {
		t.Errorf("merged experience = %+v", exp)
	}
	if len(exp[0].Highlights) != 1 || exp[0].Highlights[0] != "Shipped the platform" {
		t.Errorf("merged highlights = %+v", exp[0].Highlights)
	}
}

func TestGenerateDataFromURL(t *testing.T) {
	posting := &models.JobPosting{
		SourceURL:   "https://www.linkedin.com/jobs/view/4012345678",
		JobID:       "4012345678",
		Title:       "Platform Engineer",
		Company:     "Initech",
		Description: "Run the platform.",
		Engine:      "apify",
		FetchedAt:   time.Now(),
	}
	factory := &fakeFactory{scraper: &fakeScraper{posting: posting}}
	llm := &fakeLLM{response: sectionsJSON}
	svc := newTestService(&fakeProfiles{profile: serviceProfile()}, llm, factory)

	resp, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{
		URL: "https://www.linkedin.com/jobs/view/4012345678",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Source != "https://www.linkedin.com/jobs/view/4012345678" {
		t.Errorf("source = %q", resp.Source)
	}
	if resp.RoleTitle != "Platform Engineer" || resp.CompanyName != "Initech" {
		t.Errorf("role/company = %q / %q", resp.RoleTitle, resp.CompanyName)
	}
	if len(factory.engines) != 1 || factory.engines[0] != "apify" {
		t.Errorf("engines used = %v, want [apify]", factory.engines)
	}
	if len(llm.prompts) != 1 {
		t.Fatalf("llm calls = %d", llm.calls)
	}
}

func TestGenerateDataBundle(t *testing.T) {
	response := `{
		"sections": ` + sectionsJSON + `,
		"cover_letter": "Dear team, I am applying.",
		"email_message": {"subject": "Application", "body": "Please see attached."}
	}`
	llm := &fakeLLM{response: response}
	svc := newTestService(&fakeProfiles{profile: serviceProfile()}, llm, nil)

	resp, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{
		JobDescription:       "We need a Go engineer.",
		GenerateCoverLetter:  true,
		GenerateEmailMessage: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.CoverLetter != "Dear team, I am applying." {
		t.Errorf("cover letter = %q", resp.CoverLetter)
	}
	if resp.EmailMessage == nil || resp.EmailMessage.Subject != "Application" {
		t.Errorf("email message = %+v", resp.EmailMessage)
	}
	if len(resp.Sections.ProfessionalExperience) != 1 {
		t.Errorf("sections not merged from nested payload: %+v", resp.Sections)
	}
}

func TestGenerateDataMalformedLLMResponse(t *testing.T) {
	llm := &fakeLLM{response: "Sorry, I cannot help with that."}
	svc := newTestService(&fakeProfiles{profile: serviceProfile()}, llm, nil)

	_, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{
		JobDescription: "We need a Go engineer.",
	})
	if !utils.IsKind(err, utils.KindMalformedAIResponse) {
		t.Errorf("expected malformed AI response error, got %v", err)
	}
}

func TestGenerateDataMissingSectionKey(t *testing.T) {
	llm := &fakeLLM{response: `{"header": {}, "professional_summary": "x", "core_skills": {}, "personal_projects": []}`}
	svc := newTestService(&fakeProfiles{profile: serviceProfile()}, llm, nil)

	_, err := svc.GenerateData(context.Background(), &models.GenerateDataRequest{
		JobDescription: "We need a Go engineer.",
	})
	if !utils.IsKind(err, utils.KindMissingField) {
		t.Errorf("expected missing field error, got %v", err)
	}
}

func TestExtractJobRoutesByURL(t *testing.T) {
	factory := &fakeFactory{scraper: &fakeScraper{posting: &models.JobPosting{
		SourceURL:   "https://jobs.example.com/roles/42",
		Description: "desc",
	}}}
	svc := newTestService(&fakeProfiles{profile: serviceProfile()}, &fakeLLM{}, factory)

	if _, err := svc.ExtractJob(context.Background(), "https://jobs.example.com/roles/42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(factory.engines) != 1 || factory.engines[0] != "firecrawl" {
		t.Errorf("engines used = %v, want [firecrawl]", factory.engines)
	}
}
