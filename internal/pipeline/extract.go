package pipeline

import (
	"encoding/json"
	"strings"

	"cvgen-utils/pkg/utils"
)

// ExtractJSON recovers a JSON object from an LLM response that may be wrapped
// in prose or markdown code fences. It tries a direct parse first, then the
// substring between the first '{' and the last '}'. No further repair is
// attempted; anything else fails with a malformed-response error.
func ExtractJSON(raw string) (map[string]json.RawMessage, error) {
	text := strings.TrimSpace(raw)

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		return payload, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, utils.NewMalformedAIResponseError("no JSON object found in response")
	}

	snippet := text[start : end+1]
	if err := json.Unmarshal([]byte(snippet), &payload); err != nil {
		return nil, utils.NewMalformedAIResponseError(err.Error())
	}
	return payload, nil
}
