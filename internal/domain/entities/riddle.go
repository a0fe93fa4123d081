package entities

import (
	"errors"
	"fmt"
	"strings"
)

const (
	OptionsPerRiddle = 4  // every riddle offers exactly four options
	RiddlesPerLevel  = 10 // every level consists of exactly ten riddles
)

var ErrInvalidRiddle = errors.New("invalid riddle")

// Riddle is a single multiple-choice question. It is never modified after it is received.
type Riddle struct {
	ID            string   `json:"id"`            // unique riddle ID within a level
	Question      string   `json:"question"`      // riddle text
	Options       []string `json:"options"`       // exactly four answer options
	CorrectAnswer int      `json:"correctAnswer"` // index of the correct option (0-3)
	Explanation   string   `json:"explanation"`   // short explanation shown after answering
}

// Validate checks that the riddle is playable.
func (r Riddle) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("%w: empty question", ErrInvalidRiddle)
	}

	if len(r.Options) != OptionsPerRiddle {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidRiddle, OptionsPerRiddle, len(r.Options))
	}

	for i, opt := range r.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: option %d is empty", ErrInvalidRiddle, i)
		}
	}

	if r.CorrectAnswer < 0 || r.CorrectAnswer >= OptionsPerRiddle {
		return fmt.Errorf("%w: correct answer %d out of range", ErrInvalidRiddle, r.CorrectAnswer)
	}

	return nil
}

// IsCorrect reports whether the given option index is the correct answer.
func (r Riddle) IsCorrect(option int) bool {
	return option == r.CorrectAnswer
}

// ValidateRiddleSet checks that a level's riddle set has the expected size and that
// every riddle in it is valid.
func ValidateRiddleSet(riddles []Riddle) error {
	if len(riddles) != RiddlesPerLevel {
		return fmt.Errorf("%w: expected %d riddles, got %d", ErrInvalidRiddle, RiddlesPerLevel, len(riddles))
	}

	for i, r := range riddles {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("riddle %d: %w", i+1, err)
		}
	}

	return nil
}
