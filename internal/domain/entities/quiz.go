package entities

// Screen is the screen the player currently sees.
type Screen string

const (
	ScreenMenu        Screen = "MENU"
	ScreenLevelSelect Screen = "LEVEL_SELECT"
	ScreenLoading     Screen = "LOADING"
	ScreenGame        Screen = "GAME"
	ScreenResult      Screen = "RESULT"
)

// AnswerFeedback marks the option the player chose while the feedback delay runs.
type AnswerFeedback struct {
	Index   int  // chosen option
	Correct bool // whether the chosen option is the correct one
}

// QuizSession represents one attempt at a level.
// It is never persisted and is discarded when the attempt ends.
type QuizSession struct {
	ID           string          // attempt ID; tags fetches and timers that belong to this attempt
	Level        int             // level being played
	Riddles      []Riddle        // the level's riddles, in order
	CurrentIndex int             // index of the question being answered
	Score        int             // number of correct answers so far
	Feedback     *AnswerFeedback // set while the answer feedback is displayed
}

// NewQuizSession starts an attempt at the first question with a zero score.
func NewQuizSession(id string, level int, riddles []Riddle) QuizSession {
	return QuizSession{
		ID:      id,
		Level:   level,
		Riddles: riddles,
	}
}

// Current returns the riddle being answered.
func (qs QuizSession) Current() Riddle {
	return qs.Riddles[qs.CurrentIndex]
}

// FeedbackPending reports whether an answer is being displayed.
func (qs QuizSession) FeedbackPending() bool {
	return qs.Feedback != nil
}

// IsLastQuestion reports whether the current question is the last one of the level.
func (qs QuizSession) IsLastQuestion() bool {
	return qs.CurrentIndex >= len(qs.Riddles)-1
}

// Answer evaluates the chosen option and returns the session with feedback set.
// ok is false when the answer must be ignored: feedback is already pending
// or the option index is out of range.
func (qs QuizSession) Answer(option int) (next QuizSession, ok bool) {
	if qs.FeedbackPending() || option < 0 || option >= OptionsPerRiddle {
		return qs, false
	}

	correct := qs.Current().IsCorrect(option)
	if correct {
		qs.Score++
	}
	qs.Feedback = &AnswerFeedback{Index: option, Correct: correct}

	return qs, true
}

// Advance clears the feedback and moves to the next question.
// finished is true when the answered question was the last one; the index then stays put.
func (qs QuizSession) Advance() (next QuizSession, finished bool) {
	qs.Feedback = nil
	if qs.IsLastQuestion() {
		return qs, true
	}
	qs.CurrentIndex++
	return qs, false
}

// Clone returns a copy that shares no mutable state with the receiver.
func (qs QuizSession) Clone() QuizSession {
	if qs.Feedback != nil {
		fb := *qs.Feedback
		qs.Feedback = &fb
	}
	return qs
}

// LevelResult is the outcome of a finished attempt.
type LevelResult struct {
	Level  int
	Score  int
	Total  int
	Passed bool
}

// Result computes the outcome of the session.
func (qs QuizSession) Result() LevelResult {
	return LevelResult{
		Level:  qs.Level,
		Score:  qs.Score,
		Total:  len(qs.Riddles),
		Passed: IsPassed(qs.Score),
	}
}

// HasNextLevel reports whether a passed result can continue to another level.
func (r LevelResult) HasNextLevel() bool {
	return r.Passed && r.Level < TotalLevels
}
