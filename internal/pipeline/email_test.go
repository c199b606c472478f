package pipeline

import "testing"

func TestNormalizeEmailMessageJSON(t *testing.T) {
	msg := NormalizeEmailMessage(`{"subject": "Application for Backend Engineer", "body": "Dear team,"}`)
	if msg.Subject != "Application for Backend Engineer" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if msg.Body != "Dear team," {
		t.Errorf("body = %q", msg.Body)
	}
}

func TestNormalizeEmailMessageFencedJSON(t *testing.T) {
	raw := "```json\n{\"subject\": \"Hello\", \"body\": \"World\"}\n```"
	msg := NormalizeEmailMessage(raw)
	if msg.Subject != "Hello" || msg.Body != "World" {
		t.Errorf("got %+v", msg)
	}
}

func TestNormalizeEmailMessageSubjectLine(t *testing.T) {
	raw := "Subject: Application for the Go role\n\nDear hiring team,\nI am writing to apply."
	msg := NormalizeEmailMessage(raw)
	if msg.Subject != "Application for the Go role" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if msg.Body != "Dear hiring team,\nI am writing to apply." {
		t.Errorf("body = %q", msg.Body)
	}
}

func TestNormalizeEmailMessagePlainText(t *testing.T) {
	raw := "Dear team, please find my CV attached."
	msg := NormalizeEmailMessage(raw)
	if msg.Subject != "" {
		t.Errorf("subject should stay empty, got %q", msg.Subject)
	}
	if msg.Body != raw {
		t.Errorf("body = %q", msg.Body)
	}
}
