package models

import (
	"encoding/json"
	"regexp"
	"strings"
)

var newlineRun = regexp.MustCompile(`\n+`)

// StringList is a list of non-empty trimmed strings that unmarshals from
// either a JSON array or a newline-separated string. LLM payloads use both
// shapes interchangeably.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (s *StringList) UnmarshalJSON(data []byte) error {
	var asList []json.RawMessage
	if err := json.Unmarshal(data, &asList); err == nil {
		out := make(StringList, 0, len(asList))
		for _, item := range asList {
			var str string
			if err := json.Unmarshal(item, &str); err != nil {
				// Non-string array members are stringified as-is
				str = string(item)
			}
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*s = out
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	out := StringList{}
	for _, line := range newlineRun.Split(asString, -1) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*s = out
	return nil
}

// SectionHeader is the contact block at the top of a rendered document. The
// model may echo it back; missing fields are backfilled from the profile.
type SectionHeader struct {
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// AIExperience is the model's contribution to one experience entry. Only the
// highlights are consumed; identity fields the model emits are discarded.
type AIExperience struct {
	Highlights StringList `json:"highlights"`
}

// Project is a personal project section entry, fully AI-authored
type Project struct {
	Name       string     `json:"name"`
	TechStack  StringList `json:"tech_stack"`
	Highlights StringList `json:"highlights"`
}

// ExperienceEntry is a merged professional experience entry: identity fields
// verbatim from the profile, highlights from the AI payload or the profile
// description fallback
type ExperienceEntry struct {
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	Duration   string     `json:"duration"`
	Highlights StringList `json:"highlights"`
}

// ResumeSections is the merged, render-ready content model
type ResumeSections struct {
	Header                 SectionHeader     `json:"header"`
	ProfessionalSummary    string            `json:"professional_summary"`
	CoreSkills             CoreSkills        `json:"core_skills"`
	ProfessionalExperience []ExperienceEntry `json:"professional_experience"`
	PersonalProjects       []Project         `json:"personal_projects"`
	Education              StringList        `json:"education"`
	TrainingCertifications StringList        `json:"training_certifications"`
}

// EmailMessage is a short application email normalized from a model response
type EmailMessage struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
