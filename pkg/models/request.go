package models

// GenerateDataRequest is the payload for the generate-data operation. Either
// URL or JobDescription must be supplied.
type GenerateDataRequest struct {
	URL            string `json:"url" validate:"omitempty,url"`
	JobDescription string `json:"job_description,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	JobRole        string `json:"job_role,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	Model          string `json:"model,omitempty"`

	// Prompt replaces the built-in CV prompt when set. It may reference the
	// {cv_structure}, {profile_json} and {job_description} placeholders.
	Prompt string `json:"prompt,omitempty"`

	GenerateCoverLetter  bool   `json:"generate_cover_letter"`
	GenerateEmailMessage bool   `json:"generate_email_message"`
	CoverLetterPrompt    string `json:"cover_letter_prompt,omitempty"`
	EmailMessagePrompt   string `json:"email_message_prompt,omitempty"`

	// APIKey optionally overrides the configured LLM API key for this request
	APIKey string `json:"api_key,omitempty"`
}

// RenderRequest is the payload for rendering already-merged resume sections
// into a binary document. Constructed per call, consumed once, never stored.
type RenderRequest struct {
	FullName    string         `json:"full_name" validate:"required"`
	CompanyName string         `json:"company_name"`
	RoleTitle   string         `json:"role_title"`
	Source      string         `json:"source"`
	Format      string         `json:"format" validate:"omitempty,output_format"`
	Sections    ResumeSections `json:"sections"`
}

// CoverLetterRenderRequest renders a plain-text cover letter body with the
// shared header block
type CoverLetterRenderRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	CompanyName string `json:"company_name"`
	RoleTitle   string `json:"role_title"`
	Source      string `json:"source"`
	Format      string `json:"format" validate:"omitempty,output_format"`
	CoverLetter string `json:"cover_letter" validate:"required"`
}

// ChatRequest is a raw LLM passthrough request
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Model  string `json:"model,omitempty"`
	APIKey string `json:"api_key,omitempty"`
}

// JobExtractRequest fetches raw job posting data for a URL without running
// the generation pipeline
type JobExtractRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// AskOptions carries per-request overrides for an LLM completion call. Zero
// values fall back to the configured defaults.
type AskOptions struct {
	Model     string `json:"model,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}
