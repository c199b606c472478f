package pipeline

import (
	"strings"
	"testing"
)

func TestBuildCVPromptDefault(t *testing.T) {
	b := NewPromptBuilder()
	profile := testProfile()

	prompt := b.BuildCVPrompt(profile, "We need a Go engineer.", "")

	if !strings.Contains(prompt, "We need a Go engineer.") {
		t.Error("prompt missing job description")
	}
	if !strings.Contains(prompt, profile.FullName) {
		t.Error("prompt missing profile data")
	}
	if !strings.Contains(prompt, "Never change job titles") {
		t.Error("prompt missing identity-freeze instructions")
	}
}

func TestBuildCVPromptOverrideWithPlaceholders(t *testing.T) {
	b := NewPromptBuilderWithStructure("STRUCTURE-TEMPLATE")
	profile := testProfile()

	override := "Custom instructions.\n{cv_structure}\nProfile: {profile_json}\nJob: {job_description}"
	prompt := b.BuildCVPrompt(profile, "JOB-TEXT", override)

	if !strings.Contains(prompt, "STRUCTURE-TEMPLATE") {
		t.Error("structure placeholder not substituted")
	}
	if !strings.Contains(prompt, "JOB-TEXT") {
		t.Error("job description placeholder not substituted")
	}
	if !strings.Contains(prompt, profile.Email) {
		t.Error("profile placeholder not substituted")
	}
	if strings.Contains(prompt, "{cv_structure}") || strings.Contains(prompt, "{job_description}") {
		t.Error("placeholder tokens leaked into prompt")
	}
}

func TestBuildCVPromptOverrideWithoutPlaceholders(t *testing.T) {
	b := NewPromptBuilderWithStructure("STRUCTURE-TEMPLATE")

	prompt := b.BuildCVPrompt(testProfile(), "JOB-TEXT", "Make it punchy.")

	if !strings.HasPrefix(prompt, "Make it punchy.") {
		t.Error("override text must lead the prompt")
	}
	// Context is appended so the model keeps its grounding
	if !strings.Contains(prompt, "JOB-TEXT") || !strings.Contains(prompt, "STRUCTURE-TEMPLATE") {
		t.Error("canonical context block missing")
	}
}

func TestBuildBundlePromptContract(t *testing.T) {
	b := NewPromptBuilder()

	prompt := b.BuildBundlePrompt(testProfile(), "JOB-TEXT", BundleOptions{
		FullName:     "Ada Lovelace",
		RoleTitle:    "Backend Engineer",
		CompanyName:  "Initech",
		CoverLetter:  true,
		EmailMessage: false,
	})

	for _, want := range []string{`"sections"`, `"cover_letter"`, `"email_message": null`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing output contract fragment %q", want)
		}
	}
	if !strings.Contains(prompt, "Cover letter instructions:") {
		t.Error("prompt missing cover letter instructions")
	}
	if strings.Contains(prompt, "Email message instructions:") {
		t.Error("email instructions present though email was not requested")
	}
	if !strings.Contains(prompt, "Initech") {
		t.Error("prompt missing company name")
	}
}

func TestBuildBundlePromptEmailOnly(t *testing.T) {
	b := NewPromptBuilder()

	prompt := b.BuildBundlePrompt(testProfile(), "JOB-TEXT", BundleOptions{
		EmailMessage:       true,
		EmailMessagePrompt: "Keep it under three sentences.",
	})

	if !strings.Contains(prompt, `"cover_letter": null`) {
		t.Error("unrequested cover letter must be null in the contract")
	}
	if !strings.Contains(prompt, "Keep it under three sentences.") {
		t.Error("email style override not included")
	}
}
