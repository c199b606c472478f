package models

import "time"

// ProfileLinks holds the candidate's public profile URLs
type ProfileLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// CoreSkills groups the candidate's skills into the four named categories
// used throughout prompt building and rendering
type CoreSkills struct {
	LanguagesFrameworks  StringList `json:"languages_frameworks"`
	DatabasesTools       StringList `json:"databases_tools"`
	TestingDevOps        StringList `json:"testing_devops"`
	DevelopmentPractices StringList `json:"development_practices"`
}

// Flatten returns every skill across all four groups as a single list
func (cs CoreSkills) Flatten() []string {
	var keywords []string
	keywords = append(keywords, cs.LanguagesFrameworks...)
	keywords = append(keywords, cs.DatabasesTools...)
	keywords = append(keywords, cs.TestingDevOps...)
	keywords = append(keywords, cs.DevelopmentPractices...)
	return keywords
}

// ProfileExperience is a single work experience entry on the stored profile.
// Title, company and duration are ground truth and are never AI-controlled.
type ProfileExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ProfileEducation is the single education record on the profile
type ProfileEducation struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduation_date"`
}

// ProfileCertification is a training/certification entry on the profile
type ProfileCertification struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Duration string `json:"duration"`
}

// Profile is the singleton candidate profile record. One profile exists per
// deployment; its absence blocks all generation operations.
type Profile struct {
	ID                     string                 `json:"id,omitempty"`
	FullName               string                 `json:"full_name" validate:"required"`
	Title                  string                 `json:"title" validate:"required"`
	Location               string                 `json:"location"`
	Phone                  string                 `json:"phone"`
	Email                  string                 `json:"email" validate:"required,email"`
	Links                  ProfileLinks           `json:"links"`
	ProfessionalSummary    string                 `json:"professional_summary"`
	CoreSkills             CoreSkills             `json:"core_skills"`
	ProfessionalExperience []ProfileExperience    `json:"professional_experience"`
	Education              ProfileEducation       `json:"education"`
	Certifications         []ProfileCertification `json:"training_and_certifications"`
	CreatedAt              time.Time              `json:"created_at,omitempty"`
	UpdatedAt              time.Time              `json:"updated_at,omitempty"`
}
