package claude

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := New("", ""); !errors.Is(err, ErrEmptyAPIKey) {
		t.Errorf("expected ErrEmptyAPIKey, got %v", err)
	}

	c, err := New("key", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.model != DefaultModel {
		t.Errorf("expected default model %s, got %s", DefaultModel, c.model)
	}

	c, err = New("key", " claude-haiku-4-5 ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.model != "claude-haiku-4-5" {
		t.Errorf("expected trimmed model, got %q", c.model)
	}
}
