package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringListFromArray(t *testing.T) {
	var s StringList
	if err := json.Unmarshal([]byte(`[" Go ", "", "Redis"]`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(s, StringList{"Go", "Redis"}) {
		t.Errorf("got %+v", s)
	}
}

func TestStringListFromNewlineString(t *testing.T) {
	var s StringList
	if err := json.Unmarshal([]byte(`"first line\n\nsecond line\nthird"`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(s, StringList{"first line", "second line", "third"}) {
		t.Errorf("got %+v", s)
	}
}

func TestStringListRejectsNonString(t *testing.T) {
	var s StringList
	if err := json.Unmarshal([]byte(`42`), &s); err == nil {
		t.Error("expected error for a bare number")
	}
}

func TestCoreSkillsFlatten(t *testing.T) {
	cs := CoreSkills{
		LanguagesFrameworks:  StringList{"Go"},
		DatabasesTools:       StringList{"Redis"},
		TestingDevOps:        StringList{"Docker"},
		DevelopmentPractices: StringList{"TDD"},
	}
	got := cs.Flatten()
	want := []string{"Go", "Redis", "Docker", "TDD"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}
