package entities

const (
	TotalLevels   = 500
	PassThreshold = 7 // minimal score out of RiddlesPerLevel needed to pass a level

	lastEasyLevel   = 50
	lastMediumLevel = 150
)

// Difficulty is derived from the level number and never stored.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyForLevel returns the difficulty tier of a level:
// 1-50 easy, 51-150 medium, 151+ hard.
func DifficultyForLevel(level int) Difficulty {
	switch {
	case level > lastMediumLevel:
		return DifficultyHard
	case level > lastEasyLevel:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// Label returns the Arabic label of the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyMedium:
		return "متوسط"
	case DifficultyHard:
		return "صعب"
	default:
		return "سهل"
	}
}

// PromptHint returns the Arabic wording used when asking the content backend for riddles.
func (d Difficulty) PromptHint() string {
	switch d {
	case DifficultyMedium:
		return "متوسط يحتاج تفكير"
	case DifficultyHard:
		return "صعب جداً وخادع"
	default:
		return "سهل وبسيط"
	}
}

// IsValidLevel reports whether n is a level of the map.
func IsValidLevel(n int) bool {
	return n >= 1 && n <= TotalLevels
}

// Level is a derived view of one level on the map.
type Level struct {
	Number     int
	Difficulty Difficulty
	Unlocked   bool
	Completed  bool
}

// LevelView derives the state of level n from the completed set.
func LevelView(n int, completed CompletedLevels) Level {
	return Level{
		Number:     n,
		Difficulty: DifficultyForLevel(n),
		Unlocked:   completed.IsUnlocked(n),
		Completed:  completed.Contains(n),
	}
}

// IsPassed reports whether a score passes a level.
func IsPassed(score int) bool {
	return score >= PassThreshold
}
