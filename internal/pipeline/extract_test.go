package pipeline

import (
	"testing"

	"cvgen-utils/pkg/utils"
)

func TestExtractJSONDirect(t *testing.T) {
	payload, err := ExtractJSON(`{"header": {"full_name": "Ada"}, "professional_summary": "text"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := payload["header"]; !ok {
		t.Error("missing header key")
	}
	if _, ok := payload["professional_summary"]; !ok {
		t.Error("missing professional_summary key")
	}
}

func TestExtractJSONFenced(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"professional_summary\": \"ok\"}\n```\nLet me know!"
	payload, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload["professional_summary"]) != `"ok"` {
		t.Errorf("professional_summary = %s", payload["professional_summary"])
	}
}

func TestExtractJSONProseWrapped(t *testing.T) {
	raw := `Sure! {"core_skills": {}} Hope that helps.`
	payload, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := payload["core_skills"]; !ok {
		t.Error("missing core_skills key")
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("I could not process that request.")
	if !utils.IsKind(err, utils.KindMalformedAIResponse) {
		t.Errorf("expected malformed AI response error, got %v", err)
	}
}

func TestExtractJSONBrokenObject(t *testing.T) {
	_, err := ExtractJSON(`{"unterminated": `)
	if !utils.IsKind(err, utils.KindMalformedAIResponse) {
		t.Errorf("expected malformed AI response error, got %v", err)
	}
}
