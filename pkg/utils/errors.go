package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Error kinds surfaced in API responses
const (
	KindProfileNotFound     = "profile_not_found"
	KindInvalidInput        = "invalid_input"
	KindExtractionFailed    = "extraction_failed"
	KindMalformedAIResponse = "malformed_ai_response"
	KindMissingField        = "missing_required_field"
	KindUnsupportedFormat   = "unsupported_format"
	KindUpstream            = "upstream_error"
	KindValidation          = "validation_failed"
)

// IsKind reports whether err is a CustomError of the given kind
func IsKind(err error, kind string) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.Kind == kind
}

// NewProfileNotFoundError signals that no profile record exists yet
func NewProfileNotFoundError() *CustomError {
	return &CustomError{
		Code:    http.StatusNotFound,
		Kind:    KindProfileNotFound,
		Message: "Profile not found. Create a profile first via /api/v1/profile",
	}
}

// NewInvalidInputError signals a request that cannot be processed as given
func NewInvalidInputError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: "Invalid input",
		Detail:  detail,
	}
}

// NewExtractionFailedError signals that the scraper returned no usable job description
func NewExtractionFailedError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindExtractionFailed,
		Message: "Could not extract a job description",
		Detail:  detail,
	}
}

// NewMalformedAIResponseError signals model output with no parseable JSON object
func NewMalformedAIResponseError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Kind:    KindMalformedAIResponse,
		Message: "AI response did not contain valid JSON",
		Detail:  detail,
	}
}

// NewMissingFieldError signals a parsed AI payload lacking a required key
func NewMissingFieldError(key string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Kind:    KindMissingField,
		Message: "AI response missing required key",
		Detail:  key,
	}
}

// NewUnsupportedFormatError signals a document format outside {pdf, docx}
func NewUnsupportedFormatError(format string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Kind:    KindUnsupportedFormat,
		Message: "Unsupported output format",
		Detail:  fmt.Sprintf("%q is not one of: pdf, docx", format),
	}
}

// NewUpstreamError signals a scraper or LLM transport failure; never retried
func NewUpstreamError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Kind:    KindUpstream,
		Message: "Upstream request failed",
		Detail:  detail,
	}
}

// NewValidationError signals a request that failed schema validation
func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: "Validation failed",
		Detail:  detail,
	}
}
