package entities

import "testing"

func TestDifficultyForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  Difficulty
	}{
		{1, DifficultyEasy},
		{50, DifficultyEasy},
		{51, DifficultyMedium},
		{150, DifficultyMedium},
		{151, DifficultyHard},
		{500, DifficultyHard},
	}

	for _, tt := range tests {
		if got := DifficultyForLevel(tt.level); got != tt.want {
			t.Errorf("DifficultyForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestIsPassed(t *testing.T) {
	if IsPassed(6) {
		t.Error("expected 6 to fail")
	}
	if !IsPassed(7) {
		t.Error("expected 7 to pass")
	}
	if !IsPassed(10) {
		t.Error("expected 10 to pass")
	}
}

func TestLevelView(t *testing.T) {
	completed := NewCompletedLevels(1, 2)

	l := LevelView(3, completed)
	if !l.Unlocked || l.Completed {
		t.Errorf("level 3: expected unlocked and not completed, got %+v", l)
	}

	l = LevelView(2, completed)
	if !l.Unlocked || !l.Completed {
		t.Errorf("level 2: expected unlocked and completed, got %+v", l)
	}

	l = LevelView(4, completed)
	if l.Unlocked {
		t.Errorf("level 4: expected locked, got %+v", l)
	}
}
