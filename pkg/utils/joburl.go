package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var jobViewPattern = regexp.MustCompile(`/jobs/view/(\d+)(?:/|$)`)

// IsLinkedInURL checks if a URL is a LinkedIn URL
func IsLinkedInURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	hostname := strings.ToLower(parsedURL.Hostname())
	return hostname == "linkedin.com" || strings.HasSuffix(hostname, ".linkedin.com")
}

// ExtractLinkedInJobID extracts the numeric job ID from a LinkedIn job URL.
// Supported formats are ...?currentJobId=<id> and /jobs/view/<id>/.
func ExtractLinkedInJobID(urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	if jobID := strings.TrimSpace(parsedURL.Query().Get("currentJobId")); jobID != "" {
		return jobID, nil
	}

	if matches := jobViewPattern.FindStringSubmatch(parsedURL.Path); len(matches) > 1 {
		return matches[1], nil
	}

	return "", NewInvalidInputError(
		"the URL does not contain a job ID; supported formats are ...?currentJobId=<id> and /jobs/view/<id>/")
}
