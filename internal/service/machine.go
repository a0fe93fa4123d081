package service

import (
	"github.com/google/uuid"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

// State is the full game state of one player. A State value is never mutated
// after it is published; transitions build a new one.
type State struct {
	Screen    entities.Screen
	Level     int                   // level being loaded, played or just finished
	AttemptID string                // tag of the outstanding fetch; empty when nothing is loading
	Session   *entities.QuizSession // set on GAME
	Result    *entities.LevelResult // set on RESULT
	Completed entities.CompletedLevels
}

// InitialState returns the MENU state with the player's stored progress.
func InitialState(completed entities.CompletedLevels) State {
	return State{
		Screen:    entities.ScreenMenu,
		Completed: completed,
	}
}

// Event is an input of the state machine: a player intent or a completion
// reported by a fetch or timer.
type Event interface{ event() }

type (
	StartGame     struct{}
	SelectLevel   struct{ Level int }
	SubmitAnswer  struct{ Option int }
	GoToLevelList struct{}
	RetryLevel    struct{}
	NextLevel     struct{}

	// RiddlesLoaded reports a finished fetch.
	RiddlesLoaded struct {
		AttemptID string
		Riddles   []entities.Riddle
	}

	// FeedbackElapsed reports that the answer feedback of a question has been shown long enough.
	FeedbackElapsed struct {
		SessionID string
		Index     int
	}
)

func (StartGame) event()       {}
func (SelectLevel) event()     {}
func (SubmitAnswer) event()    {}
func (GoToLevelList) event()   {}
func (RetryLevel) event()      {}
func (NextLevel) event()       {}
func (RiddlesLoaded) event()   {}
func (FeedbackElapsed) event() {}

// Effect is a side effect requested by a transition and carried out by the engine.
type Effect interface{ effect() }

type (
	// FetchRiddles asks the content provider for the riddles of a level.
	FetchRiddles struct {
		AttemptID string
		Level     int
	}

	// ScheduleAdvance asks for a FeedbackElapsed event after the feedback delay.
	ScheduleAdvance struct {
		SessionID string
		Index     int
	}

	// SaveProgress asks to persist the full completed set.
	SaveProgress struct{ Completed entities.CompletedLevels }

	// Celebrate asks the presentation layer for a celebration.
	Celebrate struct{ Level int }

	// CancelPending asks to stop any outstanding fetch or timer.
	CancelPending struct{}
)

func (FetchRiddles) effect()    {}
func (ScheduleAdvance) effect() {}
func (SaveProgress) effect()    {}
func (Celebrate) effect()       {}
func (CancelPending) effect()   {}

// Machine is the reducer of the game. It holds no state of its own.
type Machine struct {
	newID func() string
}

// NewMachine creates a Machine that tags attempts with random UUIDs.
func NewMachine() Machine {
	return Machine{newID: uuid.NewString}
}

// Transition applies ev to s. Events that are not valid for the current state
// return s unchanged and no effects.
func (m Machine) Transition(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case StartGame:
		if s.Screen != entities.ScreenMenu {
			return s, nil
		}
		s.Screen = entities.ScreenLevelSelect
		return s, nil

	case SelectLevel:
		if s.Screen != entities.ScreenLevelSelect || !s.Completed.IsUnlocked(e.Level) {
			return s, nil
		}
		return m.startLoading(s, e.Level)

	case RetryLevel:
		if s.Screen != entities.ScreenResult || s.Result == nil || s.Result.Passed {
			return s, nil
		}
		return m.startLoading(s, s.Result.Level)

	case NextLevel:
		if s.Screen != entities.ScreenResult || s.Result == nil || !s.Result.HasNextLevel() {
			return s, nil
		}
		return m.startLoading(s, s.Result.Level+1)

	case GoToLevelList:
		switch s.Screen {
		case entities.ScreenLevelSelect, entities.ScreenLoading, entities.ScreenGame, entities.ScreenResult:
		default:
			return s, nil
		}
		s.Screen = entities.ScreenLevelSelect
		s.AttemptID = ""
		s.Session = nil
		s.Result = nil
		return s, []Effect{CancelPending{}}

	case RiddlesLoaded:
		if s.Screen != entities.ScreenLoading || e.AttemptID == "" || e.AttemptID != s.AttemptID {
			return s, nil
		}
		session := entities.NewQuizSession(e.AttemptID, s.Level, e.Riddles)
		s.Screen = entities.ScreenGame
		s.AttemptID = ""
		s.Session = &session
		return s, nil

	case SubmitAnswer:
		if s.Screen != entities.ScreenGame || s.Session == nil {
			return s, nil
		}
		next, ok := s.Session.Clone().Answer(e.Option)
		if !ok {
			return s, nil
		}
		s.Session = &next
		return s, []Effect{ScheduleAdvance{SessionID: next.ID, Index: next.CurrentIndex}}

	case FeedbackElapsed:
		if s.Screen != entities.ScreenGame || s.Session == nil {
			return s, nil
		}
		if e.SessionID != s.Session.ID || e.Index != s.Session.CurrentIndex || !s.Session.FeedbackPending() {
			return s, nil
		}
		next, finished := s.Session.Clone().Advance()
		if finished {
			return m.finishLevel(s, next)
		}
		s.Session = &next
		return s, nil
	}

	return s, nil
}

func (m Machine) startLoading(s State, level int) (State, []Effect) {
	id := m.newID()

	s.Screen = entities.ScreenLoading
	s.Level = level
	s.AttemptID = id
	s.Session = nil
	s.Result = nil

	return s, []Effect{FetchRiddles{AttemptID: id, Level: level}}
}

// finishLevel moves to RESULT and records a pass.
func (m Machine) finishLevel(s State, session entities.QuizSession) (State, []Effect) {
	result := session.Result()

	s.Screen = entities.ScreenResult
	s.Session = nil
	s.Result = &result

	if !result.Passed {
		return s, nil
	}

	s.Completed = s.Completed.With(result.Level)

	return s, []Effect{
		SaveProgress{Completed: s.Completed},
		Celebrate{Level: result.Level},
	}
}
