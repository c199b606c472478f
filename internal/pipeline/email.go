package pipeline

import (
	"encoding/json"
	"strings"

	"cvgen-utils/pkg/models"
)

// NormalizeEmailMessage recovers a subject/body pair from a model response
// that may be JSON, fenced JSON, or loose text with an optional leading
// "Subject:" line. Best-effort by design: it never errors, falling back to
// the raw text as the body.
func NormalizeEmailMessage(raw string) models.EmailMessage {
	text := stripCodeFence(strings.TrimSpace(raw))

	if msg, ok := parseEmailJSON(text); ok {
		return msg
	}

	// Loose text: honor a leading "Subject:" line when present
	if line, rest, found := strings.Cut(text, "\n"); found || strings.HasPrefix(strings.ToLower(text), "subject:") {
		if subject, ok := cutSubjectPrefix(line); ok {
			return models.EmailMessage{
				Subject: subject,
				Body:    strings.TrimSpace(rest),
			}
		}
	}

	return models.EmailMessage{Body: text}
}

func parseEmailJSON(text string) (models.EmailMessage, bool) {
	candidates := []string{text}

	// Same span heuristic as ExtractJSON, inlined because failure here is
	// not an error condition
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		candidates = append(candidates, text[start:end+1])
	}

	for _, candidate := range candidates {
		var msg models.EmailMessage
		if err := json.Unmarshal([]byte(candidate), &msg); err != nil {
			continue
		}
		msg.Subject = strings.TrimSpace(msg.Subject)
		msg.Body = strings.TrimSpace(msg.Body)
		if msg.Subject != "" || msg.Body != "" {
			return msg, true
		}
	}
	return models.EmailMessage{}, false
}

func cutSubjectPrefix(line string) (string, bool) {
	if len(line) < len("subject:") || !strings.EqualFold(line[:len("subject:")], "subject:") {
		return "", false
	}
	return strings.TrimSpace(line[len("subject:"):]), true
}

// stripCodeFence removes a surrounding markdown code fence, with or without a
// language tag
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	inner := strings.TrimPrefix(text, "```")
	if newline := strings.Index(inner, "\n"); newline != -1 {
		// Drop the language tag line (e.g. "json")
		inner = inner[newline+1:]
	}
	inner = strings.TrimSuffix(strings.TrimSpace(inner), "```")
	return strings.TrimSpace(inner)
}
