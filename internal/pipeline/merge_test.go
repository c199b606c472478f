package pipeline

import (
	"encoding/json"
	"testing"

	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

func testProfile() *models.Profile {
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
			{
				Title:       "Backend Engineer",
				Company:     "Difference Co",
				Duration:    "2018 - 2021",
				Description: "Maintained batch pipelines.",
			},
		},
		Education: models.ProfileEducation{
			Degree:         "BSc Mathematics",
			Institution:    "University of London",
			Location:       "London",
			GraduationDate: "2017",
		},
		Certifications: []models.ProfileCertification{
			{Name: "Cloud Architect", Provider: "GCP", Duration: "2022"},
		},
	}
}

func payloadFrom(t *testing.T, raw string) map[string]json.RawMessage {
	t.Helper()
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	return payload
}

const fullPayload = `{
	"header": {"full_name": "Ada Lovelace", "job_title": "Senior Backend Engineer"},
	"professional_summary": "Backend engineer with a decade of experience.",
	"core_skills": {
		"languages_frameworks": ["Go", "Python"],
		"databases_tools": ["Redis"],
		"testing_devops": ["Docker"],
		"development_practices": ["TDD"]
	},
	"professional_experience": [
		{"title": "Principal Engineer", "company": "Made Up Corp", "highlights": ["Scaled the platform to 1M users"]},
		{"highlights": []}
	],
	"personal_projects": [
		{"name": "cvgen", "tech_stack": ["Go"], "highlights": ["Wrote a CV generator"]}
	]
}`

func TestMergeIdentityFieldsComeFromProfile(t *testing.T) {
	profile := testProfile()
	merged, err := Merge(payloadFrom(t, fullPayload), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(merged.ProfessionalExperience) != len(profile.ProfessionalExperience) {
		t.Fatalf("experience length = %d, want %d", len(merged.ProfessionalExperience), len(profile.ProfessionalExperience))
	}

	first := merged.ProfessionalExperience[0]
	if first.Title != "Senior Backend Engineer" || first.Company != "Analytical Engines Ltd" || first.Duration != "2021 - Present" {
		t.Errorf("identity fields not taken from profile: %+v", first)
	}
	if len(first.Highlights) != 1 || first.Highlights[0] != "Scaled the platform to 1M users" {
		t.Errorf("highlights not taken from AI payload: %+v", first.Highlights)
	}
}

func TestMergeDescriptionFallback(t *testing.T) {
	merged, err := Merge(payloadFrom(t, fullPayload), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := merged.ProfessionalExperience[1]
	if len(second.Highlights) != 1 || second.Highlights[0] != "Maintained batch pipelines." {
		t.Errorf("expected description fallback, got %+v", second.Highlights)
	}
}

func TestMergeExtraAIEntriesIgnored(t *testing.T) {
	profile := testProfile()
	profile.ProfessionalExperience = profile.ProfessionalExperience[:1]

	merged, err := Merge(payloadFrom(t, fullPayload), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged.ProfessionalExperience) != 1 {
		t.Errorf("AI-invented experience entries must be dropped, got %d entries", len(merged.ProfessionalExperience))
	}
}

func TestMergeEducationIgnoresAIPayload(t *testing.T) {
	payload := payloadFrom(t, fullPayload)
	payload["education"] = json.RawMessage(`["PhD in Everything - Fake University"]`)
	payload["training_certifications"] = json.RawMessage(`["Invented Cert"]`)

	merged, err := Merge(payload, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantEdu := "BSc Mathematics - University of London | London, 2017"
	if len(merged.Education) != 1 || merged.Education[0] != wantEdu {
		t.Errorf("education = %+v, want [%q]", merged.Education, wantEdu)
	}

	wantCert := "Cloud Architect - GCP - 2022"
	if len(merged.TrainingCertifications) != 1 || merged.TrainingCertifications[0] != wantCert {
		t.Errorf("certifications = %+v, want [%q]", merged.TrainingCertifications, wantCert)
	}
}

func TestMergeMissingRequiredKey(t *testing.T) {
	payload := payloadFrom(t, fullPayload)
	delete(payload, "core_skills")

	_, err := Merge(payload, testProfile())
	if !utils.IsKind(err, utils.KindMissingField) {
		t.Errorf("expected missing field error, got %v", err)
	}
}

func TestMergeMalformedSection(t *testing.T) {
	payload := payloadFrom(t, fullPayload)
	payload["professional_experience"] = json.RawMessage(`"not an array"`)

	_, err := Merge(payload, testProfile())
	if !utils.IsKind(err, utils.KindMalformedAIResponse) {
		t.Errorf("expected malformed AI response error, got %v", err)
	}
}

func TestFormatEducationPartial(t *testing.T) {
	got := formatEducation(models.ProfileEducation{Degree: "BSc", Institution: "MIT"})
	if len(got) != 1 || got[0] != "BSc - MIT" {
		t.Errorf("formatEducation = %+v", got)
	}

	if got := formatEducation(models.ProfileEducation{}); len(got) != 0 {
		t.Errorf("empty education should produce no lines, got %+v", got)
	}
}
