package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCVValidators registers the shared custom validators used by the CV
// endpoints
func RegisterCVValidators(v *validator.Validate) {
	_ = v.RegisterValidation("output_format", validateOutputFormat)
}

// validateOutputFormat accepts the supported document formats. Empty passes
// so the default can apply; the omitempty tag handles absent fields anyway.
func validateOutputFormat(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "", "pdf", "docx":
		return true
	}
	return false
}
