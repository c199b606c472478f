package models

import "time"

// GenerateDataResponse carries the merged content model plus the optional
// cover letter and email artifacts back to the caller
type GenerateDataResponse struct {
	FullName     string         `json:"full_name"`
	CompanyName  string         `json:"company_name"`
	RoleTitle    string         `json:"role_title"`
	Source       string         `json:"source"`
	Sections     ResumeSections `json:"sections"`
	CoverLetter  string         `json:"cover_letter,omitempty"`
	EmailMessage *EmailMessage  `json:"email_message,omitempty"`
}

// ChatResponse is the raw LLM passthrough response
type ChatResponse struct {
	Response string `json:"response"`
}

// ProfileResponse acknowledges a profile create/update
type ProfileResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
