package utils

import "testing"

func TestIsLinkedInURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.linkedin.com/jobs/view/4012345678", true},
		{"https://linkedin.com/jobs/view/4012345678", true},
		{"https://in.linkedin.com/jobs/view/4012345678", true},
		{"https://jobs.example.com/roles/42", false},
		{"https://notlinkedin.com/jobs/view/1", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsLinkedInURL(tt.url); got != tt.expected {
			t.Errorf("IsLinkedInURL(%q) = %v, want %v", tt.url, got, tt.expected)
		}
	}
}

func TestExtractLinkedInJobID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{"jobs view path", "https://www.linkedin.com/jobs/view/4012345678", "4012345678", false},
		{"jobs view with trailing slash", "https://www.linkedin.com/jobs/view/4012345678/", "4012345678", false},
		{"currentJobId param", "https://www.linkedin.com/jobs/search/?currentJobId=987654", "987654", false},
		{"param wins over path", "https://www.linkedin.com/jobs/view/111?currentJobId=222", "222", false},
		{"feed url without id", "https://www.linkedin.com/feed/", "", true},
		{"non numeric view segment", "https://www.linkedin.com/jobs/view/senior-engineer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractLinkedInJobID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ExtractLinkedInJobID(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}
