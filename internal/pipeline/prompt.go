package pipeline

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"cvgen-utils/pkg/models"
)

//go:embed cv_structure.md
var defaultCVStructure string

// Placeholder tokens recognized inside caller-supplied prompt overrides
const (
	PlaceholderStructure      = "{cv_structure}"
	PlaceholderProfile        = "{profile_json}"
	PlaceholderJobDescription = "{job_description}"
)

// PromptBuilder composes the instruction text sent to the LLM. Pure string
// composition; it performs no I/O and cannot fail.
type PromptBuilder struct {
	structure string
}

// NewPromptBuilder returns a builder using the embedded CV structure template
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{structure: defaultCVStructure}
}

// NewPromptBuilderWithStructure returns a builder using a caller-supplied
// structure template
func NewPromptBuilderWithStructure(structure string) *PromptBuilder {
	if strings.TrimSpace(structure) == "" {
		structure = "Use an ATS-friendly one-page CV structure."
	}
	return &PromptBuilder{structure: structure}
}

// BundleOptions selects the artifacts a combined generation request asks for
// and carries their per-artifact style overrides
type BundleOptions struct {
	FullName           string
	RoleTitle          string
	CompanyName        string
	CoverLetter        bool
	EmailMessage       bool
	CVPrompt           string
	CoverLetterPrompt  string
	EmailMessagePrompt string
}

// BuildCVPrompt composes the CV-only generation prompt. With a non-empty
// override the caller's text is used: placeholder tokens are substituted, and
// when none of the three placeholders appear the canonical context block is
// appended so the model keeps its grounding.
func (b *PromptBuilder) BuildCVPrompt(profile *models.Profile, jobDescription, override string) string {
	profileJSON := marshalProfile(profile)

	if override = strings.TrimSpace(override); override != "" {
		return b.applyOverride(override, profileJSON, jobDescription)
	}

	return b.canonicalCVInstructions() + "\n\n" + b.contextBlock(profileJSON, jobDescription)
}

// BuildBundlePrompt composes the combined CV / cover letter / email prompt,
// with an explicit JSON output contract the model must conform to
func (b *PromptBuilder) BuildBundlePrompt(profile *models.Profile, jobDescription string, opts BundleOptions) string {
	profileJSON := marshalProfile(profile)

	var sb strings.Builder
	sb.WriteString("You are an expert resume and job-application writer. ")
	sb.WriteString("Produce the requested artifacts for the candidate and target role below.\n\n")

	fmt.Fprintf(&sb, "Candidate name: %s\nTarget role: %s\nTarget company: %s\n\n",
		orDefault(opts.FullName, "the candidate"),
		orDefault(opts.RoleTitle, "the advertised role"),
		orDefault(opts.CompanyName, "the hiring company"))

	sb.WriteString("Return ONLY a valid JSON object with exactly these top-level keys:\n")
	sb.WriteString("{\n")
	sb.WriteString(`  "sections": <CV content object following the schema in the CV structure instructions>,` + "\n")
	if opts.CoverLetter {
		sb.WriteString(`  "cover_letter": <string, the full cover letter text>,` + "\n")
	} else {
		sb.WriteString(`  "cover_letter": null,` + "\n")
	}
	if opts.EmailMessage {
		sb.WriteString(`  "email_message": {"subject": <string>, "body": <string>}` + "\n")
	} else {
		sb.WriteString(`  "email_message": null` + "\n")
	}
	sb.WriteString("}\nDo not include markdown fences or any text outside the JSON object.\n\n")

	if cvPrompt := strings.TrimSpace(opts.CVPrompt); cvPrompt != "" {
		sb.WriteString("CV instructions:\n")
		sb.WriteString(substitutePlaceholders(cvPrompt, b.structure, profileJSON, jobDescription))
		sb.WriteString("\n\n")
	} else {
		sb.WriteString("CV instructions:\n")
		sb.WriteString(b.canonicalCVInstructions())
		sb.WriteString("\n\n")
	}

	if opts.CoverLetter {
		sb.WriteString("Cover letter instructions:\n")
		sb.WriteString(orDefault(strings.TrimSpace(opts.CoverLetterPrompt), defaultCoverLetterStyle))
		sb.WriteString("\n\n")
	}
	if opts.EmailMessage {
		sb.WriteString("Email message instructions:\n")
		sb.WriteString(orDefault(strings.TrimSpace(opts.EmailMessagePrompt), defaultEmailStyle))
		sb.WriteString("\n\n")
	}

	sb.WriteString(b.contextBlock(profileJSON, jobDescription))
	return sb.String()
}

const defaultCoverLetterStyle = "Write a confident, specific cover letter of three short paragraphs " +
	"addressed to the hiring team. Reference concrete experience from the profile that matches the " +
	"job description. No placeholders, no generic filler."

const defaultEmailStyle = "Write a short application email (under 120 words) with a clear subject line. " +
	"Professional but warm tone. The body should mention the attached CV."

// canonicalCVInstructions enumerates the merge policy to the model: identity
// facts are frozen, only prose may be rewritten
func (b *PromptBuilder) canonicalCVInstructions() string {
	return "You are an expert resume writer. Create CV content using BOTH the candidate profile data " +
		"and the job description. Follow the CV structure and ATS instructions exactly. " +
		"Do not invent candidate facts that are not present in the profile data. " +
		"Never change job titles, company names, employment durations, project names, degrees, " +
		"institutions or dates; those are fixed facts. Only write and rewrite prose: summaries, " +
		"bullet highlights and skill orderings. " +
		"For professional experience and personal projects, write concise impact-focused bullets " +
		"using action verbs, prioritizing keywords and responsibilities from the target job description. " +
		"Return ONLY valid JSON with the schema defined in the CV structure instructions. " +
		"Do not include markdown fences."
}

// contextBlock is the canonical grounding appended to every prompt: the
// structure template, the profile facts and the target job description
func (b *PromptBuilder) contextBlock(profileJSON, jobDescription string) string {
	return fmt.Sprintf(
		"CV structure instructions (markdown):\n%s\n\nCandidate profile data (JSON):\n%s\n\nJob description:\n%s",
		b.structure, profileJSON, jobDescription)
}

// applyOverride substitutes placeholder tokens in a caller-supplied prompt.
// When the override references none of them, the canonical context block is
// appended verbatim.
func (b *PromptBuilder) applyOverride(override, profileJSON, jobDescription string) string {
	hasPlaceholder := strings.Contains(override, PlaceholderStructure) ||
		strings.Contains(override, PlaceholderProfile) ||
		strings.Contains(override, PlaceholderJobDescription)

	if !hasPlaceholder {
		return override + "\n\n" + b.contextBlock(profileJSON, jobDescription)
	}
	return substitutePlaceholders(override, b.structure, profileJSON, jobDescription)
}

func substitutePlaceholders(text, structure, profileJSON, jobDescription string) string {
	text = strings.ReplaceAll(text, PlaceholderStructure, structure)
	text = strings.ReplaceAll(text, PlaceholderProfile, profileJSON)
	text = strings.ReplaceAll(text, PlaceholderJobDescription, jobDescription)
	return text
}

func marshalProfile(profile *models.Profile) string {
	data, err := json.Marshal(profile)
	if err != nil {
		// Profile is a plain struct; marshaling cannot realistically fail
		return "{}"
	}
	return string(data)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
