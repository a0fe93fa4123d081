package telegram

import (
	"strings"
	"testing"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

func completedRange(from, to int) entities.CompletedLevels {
	var levels []int
	for n := from; n <= to; n++ {
		levels = append(levels, n)
	}
	return entities.NewCompletedLevels(levels...)
}

func TestBuildLevelsKeyboard_FirstPage(t *testing.T) {
	kb := buildLevelsKeyboard(entities.NewCompletedLevels(1, 2), 0)

	if len(kb.InlineKeyboard) != 6 {
		t.Fatalf("expected 5 level rows and a nav row, got %d rows", len(kb.InlineKeyboard))
	}

	first := kb.InlineKeyboard[0]
	want := []struct{ text, data string }{
		{"⭐ 1", "lvl:1"},
		{"⭐ 2", "lvl:2"},
		{"3", "lvl:3"},
		{"🔒", actionLocked},
	}
	for i, w := range want {
		if first[i].Text != w.text || first[i].CallbackData == nil || *first[i].CallbackData != w.data {
			t.Errorf("button %d: got %q, want %q (%s)", i, first[i].Text, w.text, w.data)
		}
	}

	nav := kb.InlineKeyboard[5]
	if len(nav) != 1 || *nav[0].CallbackData != "page:1" {
		t.Errorf("expected only a next-page button, got %d buttons", len(nav))
	}
}

func TestBuildLevelsKeyboard_LastPage(t *testing.T) {
	last := totalLevelPages() - 1
	if last != 24 {
		t.Fatalf("expected 25 pages, got %d", last+1)
	}

	kb := buildLevelsKeyboard(entities.NewCompletedLevels(), last+10)

	levels := 0
	for _, row := range kb.InlineKeyboard[:5] {
		levels += len(row)
	}
	if levels != levelsPerPage {
		t.Errorf("expected %d level buttons, got %d", levelsPerPage, levels)
	}

	nav := kb.InlineKeyboard[5]
	if len(nav) != 1 || *nav[0].CallbackData != "page:23" {
		t.Errorf("expected only a previous-page button")
	}
}

func TestCurrentLevelPage(t *testing.T) {
	tests := []struct {
		name      string
		completed entities.CompletedLevels
		want      int
	}{
		{name: "new player", completed: entities.NewCompletedLevels(), want: 0},
		{name: "first page done", completed: completedRange(1, 20), want: 1},
		{name: "everything done", completed: completedRange(1, 500), want: 24},
	}

	for _, tt := range tests {
		if got := currentLevelPage(tt.completed); got != tt.want {
			t.Errorf("%s: page = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestBuildAnswerKeyboard(t *testing.T) {
	session := entities.NewQuizSession("a", 1, []entities.Riddle{
		{ID: "1", Question: "q", Options: []string{"w", "x", "y", "z"}, CorrectAnswer: 0},
	})

	kb := buildAnswerKeyboard(&session)
	if len(kb.InlineKeyboard) != entities.OptionsPerRiddle+1 {
		t.Fatalf("expected 4 options and a list row, got %d rows", len(kb.InlineKeyboard))
	}
	if got := *kb.InlineKeyboard[1][0].CallbackData; got != "ans:0:1" {
		t.Errorf("unexpected answer data %q", got)
	}
	if !strings.HasPrefix(kb.InlineKeyboard[0][0].Text, "أ) ") {
		t.Errorf("expected the first option to use the letter أ, got %q", kb.InlineKeyboard[0][0].Text)
	}

	answered, _ := session.Answer(2)
	kb = buildAnswerKeyboard(&answered)
	if !strings.HasPrefix(kb.InlineKeyboard[2][0].Text, "❌ ") {
		t.Errorf("expected the wrong choice to be marked, got %q", kb.InlineKeyboard[2][0].Text)
	}
}

func TestBuildResultKeyboard(t *testing.T) {
	tests := []struct {
		name   string
		result entities.LevelResult
		first  string
		rows   int
	}{
		{name: "passed", result: entities.LevelResult{Level: 4, Score: 8, Passed: true}, first: actionNext, rows: 2},
		{name: "failed", result: entities.LevelResult{Level: 4, Score: 3}, first: actionRetry, rows: 2},
		{name: "last level", result: entities.LevelResult{Level: 500, Score: 10, Passed: true}, first: actionList, rows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := buildResultKeyboard(&tt.result)
			if len(kb.InlineKeyboard) != tt.rows {
				t.Fatalf("expected %d rows, got %d", tt.rows, len(kb.InlineKeyboard))
			}
			if got := *kb.InlineKeyboard[0][0].CallbackData; got != tt.first {
				t.Errorf("first button = %q, want %q", got, tt.first)
			}
		})
	}
}
