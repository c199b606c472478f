package pipeline

import (
	"regexp"
	"strings"
)

var (
	yearsExperienceClaim = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*\+?\s*(?:years?|yrs?)\s*(?:of\s+)?experience\b`)
	bareYearsClaim       = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*\+?\s*(?:years?|yrs?)\b`)
)

// RemoveYearsClaims rewrites experience-duration claims in generated prose.
// The model is never given the candidate's career length, so any "N years of
// experience" it produces is invented; claims are softened to "hands-on
// experience" and leftover year counts are dropped.
func RemoveYearsClaims(text string) string {
	cleaned := yearsExperienceClaim.ReplaceAllString(text, "hands-on experience")
	cleaned = bareYearsClaim.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(cleaned, " "))
}
