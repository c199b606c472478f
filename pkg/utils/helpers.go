package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// GetStringOrDefault returns the value if not empty, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// CleanOptionalText trims an optional free-text field and treats common
// placeholder junk sent by API clients as empty
func CleanOptionalText(value string) string {
	cleaned := strings.TrimSpace(value)
	switch strings.ToLower(cleaned) {
	case "", "string", "none", "null", "n/a", "na":
		return ""
	}
	return cleaned
}

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
