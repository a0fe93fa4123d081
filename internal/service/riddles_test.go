package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

func validRiddlesJSON(t *testing.T, count int) string {
	t.Helper()

	data, err := json.Marshal(makeRiddles(1)[:count])
	if err != nil {
		t.Fatalf("marshal riddles: %v", err)
	}
	return string(data)
}

func TestParseRiddles_Valid(t *testing.T) {
	riddles, err := ParseRiddles(1, validRiddlesJSON(t, 10))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(riddles) != entities.RiddlesPerLevel {
		t.Errorf("expected 10 riddles, got %d", len(riddles))
	}
}

func TestParseRiddles_Wrappers(t *testing.T) {
	body := validRiddlesJSON(t, 10)

	tests := []struct {
		name  string
		input string
	}{
		{name: "json fence", input: "```json\n" + body + "\n```"},
		{name: "bare fence", input: "```\n" + body + "\n```"},
		{name: "object", input: `{"riddles":` + body + `}`},
		{name: "whitespace", input: "\n\n  " + body + "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			riddles, err := ParseRiddles(1, tt.input)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if len(riddles) != entities.RiddlesPerLevel {
				t.Errorf("expected 10 riddles, got %d", len(riddles))
			}
		})
	}
}

func TestParseRiddles_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "   ", want: ErrEmptyResponse},
		{name: "empty fence", input: "```json\n```", want: ErrEmptyResponse},
		{name: "malformed", input: "[{", want: ErrInvalidRiddles},
		{name: "prose", input: "sorry, I cannot help", want: ErrInvalidRiddles},
		{name: "too few", input: validRiddlesJSON(t, 9), want: ErrInvalidRiddles},
		{name: "bad answer", input: strings.Replace(validRiddlesJSON(t, 10), `"correctAnswer":0`, `"correctAnswer":7`, 1), want: ErrInvalidRiddles},
		{name: "three options", input: strings.Replace(validRiddlesJSON(t, 10), `["a","b","c","d"]`, `["a","b","c"]`, 1), want: ErrInvalidRiddles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRiddles(1, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseRiddles_NormalizesIDs(t *testing.T) {
	riddles := makeRiddles(3)
	riddles[0].ID = ""
	riddles[2].ID = riddles[1].ID
	riddles[4].Question = "  padded  "

	data, err := json.Marshal(riddles)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ParseRiddles(3, string(data))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	seen := make(map[string]bool)
	for i, r := range got {
		if r.ID == "" || seen[r.ID] {
			t.Errorf("riddle %d: ID %q is empty or duplicated", i, r.ID)
		}
		seen[r.ID] = true
	}
	if got[0].ID != "3-1" {
		t.Errorf("expected generated ID 3-1, got %q", got[0].ID)
	}
	if got[4].Question != "padded" {
		t.Errorf("expected trimmed question, got %q", got[4].Question)
	}
}

func TestBuildRiddlesPrompt(t *testing.T) {
	tests := []struct {
		level int
		hint  string
	}{
		{level: 1, hint: "سهل وبسيط"},
		{level: 75, hint: "متوسط يحتاج تفكير"},
		{level: 320, hint: "صعب جداً وخادع"},
	}

	for _, tt := range tests {
		prompt := BuildRiddlesPrompt(tt.level)
		if !strings.Contains(prompt, strconv.Itoa(tt.level)) {
			t.Errorf("level %d: prompt does not mention the level", tt.level)
		}
		if !strings.Contains(prompt, tt.hint) {
			t.Errorf("level %d: prompt does not contain %q", tt.level, tt.hint)
		}
	}
}

func TestRiddleService_FetchRiddles(t *testing.T) {
	body := validRiddlesJSON(t, 10)

	tests := []struct {
		name     string
		llm      *fakeLLM
		fallback bool
	}{
		{name: "success", llm: &fakeLLM{response: body}},
		{name: "backend error", llm: &fakeLLM{err: errors.New("quota exceeded")}, fallback: true},
		{name: "malformed", llm: &fakeLLM{response: "not json"}, fallback: true},
		{name: "wrong count", llm: &fakeLLM{response: validRiddlesJSON(t, 4)}, fallback: true},
		{name: "empty", llm: &fakeLLM{response: ""}, fallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRiddleService(tt.llm, time.Second, zap.NewNop())

			riddles := s.FetchRiddles(context.Background(), 7)
			if err := entities.ValidateRiddleSet(riddles); err != nil {
				t.Fatalf("provider returned an invalid set: %v", err)
			}

			isFallback := strings.HasPrefix(riddles[0].ID, "fallback-7-")
			if isFallback != tt.fallback {
				t.Errorf("fallback = %v, want %v", isFallback, tt.fallback)
			}

			if tt.llm.system != RiddlesSystemPrompt() {
				t.Error("system prompt was not passed to the backend")
			}
			if tt.llm.user != BuildRiddlesPrompt(7) {
				t.Error("user prompt was not built for the level")
			}
		})
	}
}

func TestFallbackRiddles(t *testing.T) {
	riddles := FallbackRiddles(12)

	if err := entities.ValidateRiddleSet(riddles); err != nil {
		t.Fatalf("fallback set is invalid: %v", err)
	}

	for i, r := range riddles {
		if want := "fallback-12-" + strconv.Itoa(i); r.ID != want {
			t.Errorf("riddle %d: expected ID %s, got %s", i, want, r.ID)
		}
		if r.CorrectAnswer != 0 {
			t.Errorf("riddle %d: expected answer 0, got %d", i, r.CorrectAnswer)
		}
		if !strings.Contains(r.Question, "للمرحلة 12") {
			t.Errorf("riddle %d: question does not name the level: %q", i, r.Question)
		}
	}
}
