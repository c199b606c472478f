package pipeline

import (
	"encoding/json"
	"strings"

	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// requiredSectionKeys are the top-level keys every AI payload must carry
var requiredSectionKeys = []string{
	"header",
	"professional_summary",
	"core_skills",
	"professional_experience",
	"personal_projects",
}

// Merge reconciles an AI payload with the stored profile. Identity and
// timeline facts (experience titles, companies, durations, education,
// certifications) always come from the profile; the model only contributes
// prose. This is the policy that keeps hallucinated employment history out of
// rendered documents.
func Merge(payload map[string]json.RawMessage, profile *models.Profile) (*models.ResumeSections, error) {
	for _, key := range requiredSectionKeys {
		if _, ok := payload[key]; !ok {
			return nil, utils.NewMissingFieldError(key)
		}
	}

	merged := &models.ResumeSections{}

	if err := json.Unmarshal(payload["header"], &merged.Header); err != nil {
		return nil, utils.NewMalformedAIResponseError("header: " + err.Error())
	}
	if err := json.Unmarshal(payload["professional_summary"], &merged.ProfessionalSummary); err != nil {
		return nil, utils.NewMalformedAIResponseError("professional_summary: " + err.Error())
	}
	if err := json.Unmarshal(payload["core_skills"], &merged.CoreSkills); err != nil {
		return nil, utils.NewMalformedAIResponseError("core_skills: " + err.Error())
	}

	var aiExperience []models.AIExperience
	if err := json.Unmarshal(payload["professional_experience"], &aiExperience); err != nil {
		return nil, utils.NewMalformedAIResponseError("professional_experience: " + err.Error())
	}
	merged.ProfessionalExperience = mergeExperience(aiExperience, profile.ProfessionalExperience)

	if err := json.Unmarshal(payload["personal_projects"], &merged.PersonalProjects); err != nil {
		return nil, utils.NewMalformedAIResponseError("personal_projects: " + err.Error())
	}

	// Education and certifications are never trusted from the model
	merged.Education = formatEducation(profile.Education)
	merged.TrainingCertifications = formatCertifications(profile.Certifications)

	return merged, nil
}

// mergeExperience aligns AI highlights with the profile's experience entries
// by positional index. The result always has exactly one entry per profile
// entry; AI entries beyond the profile's length are ignored, and missing or
// empty highlights fall back to the profile's raw description.
func mergeExperience(ai []models.AIExperience, profile []models.ProfileExperience) []models.ExperienceEntry {
	entries := make([]models.ExperienceEntry, 0, len(profile))
	for i, exp := range profile {
		entry := models.ExperienceEntry{
			Title:    exp.Title,
			Company:  exp.Company,
			Duration: exp.Duration,
		}
		if i < len(ai) && len(ai[i].Highlights) > 0 {
			entry.Highlights = ai[i].Highlights
		} else if desc := strings.TrimSpace(exp.Description); desc != "" {
			entry.Highlights = models.StringList{desc}
		} else {
			entry.Highlights = models.StringList{}
		}
		entries = append(entries, entry)
	}
	return entries
}

// formatEducation renders the profile's education record as a single line:
// "{degree} - {institution} | {location}, {graduation_date}", omitting either
// half when it is empty
func formatEducation(edu models.ProfileEducation) models.StringList {
	left := joinNonEmpty(" - ", edu.Degree, edu.Institution)
	right := joinNonEmpty(", ", edu.Location, edu.GraduationDate)

	switch {
	case left != "" && right != "":
		return models.StringList{left + " | " + right}
	case left != "":
		return models.StringList{left}
	case right != "":
		return models.StringList{right}
	default:
		return models.StringList{}
	}
}

// formatCertifications renders one "{name} - {provider} - {duration}" line per
// profile certification, skipping empty parts and dropping empty entries
func formatCertifications(certs []models.ProfileCertification) models.StringList {
	lines := models.StringList{}
	for _, cert := range certs {
		if line := joinNonEmpty(" - ", cert.Name, cert.Provider, cert.Duration); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
