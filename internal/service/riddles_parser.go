package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

var (
	ErrEmptyResponse  = errors.New("empty response from content backend")
	ErrInvalidRiddles = errors.New("invalid riddles")
)

// ParseRiddles decodes a backend response into the riddles of a level. The response
// may be wrapped in markdown code fences or in an object with a "riddles" field.
// Missing or duplicated IDs are replaced; any other schema violation is an error.
func ParseRiddles(level int, raw string) ([]entities.Riddle, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var riddles []entities.Riddle
	if strings.HasPrefix(cleaned, "{") {
		var wrapper struct {
			Riddles []entities.Riddle `json:"riddles"`
		}
		if err := json.Unmarshal([]byte(cleaned), &wrapper); err != nil {
			return nil, fmt.Errorf("%w: decode JSON: %v", ErrInvalidRiddles, err)
		}
		riddles = wrapper.Riddles
	} else if err := json.Unmarshal([]byte(cleaned), &riddles); err != nil {
		return nil, fmt.Errorf("%w: decode JSON: %v", ErrInvalidRiddles, err)
	}

	riddles = normalizeRiddles(level, riddles)

	if err := entities.ValidateRiddleSet(riddles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRiddles, err)
	}

	return riddles, nil
}

func normalizeRiddles(level int, riddles []entities.Riddle) []entities.Riddle {
	seen := make(map[string]bool, len(riddles))

	out := make([]entities.Riddle, 0, len(riddles))
	for i, r := range riddles {
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" || seen[r.ID] {
			r.ID = generatedID(level, i, seen)
		}
		seen[r.ID] = true

		r.Question = strings.TrimSpace(r.Question)
		r.Explanation = strings.TrimSpace(r.Explanation)

		options := make([]string, len(r.Options))
		for j, opt := range r.Options {
			options[j] = strings.TrimSpace(opt)
		}
		r.Options = options

		out = append(out, r)
	}

	return out
}

// generatedID returns "<level>-<position>", suffixed when that is already taken.
func generatedID(level, i int, seen map[string]bool) string {
	base := strconv.Itoa(level) + "-" + strconv.Itoa(i+1)
	id := base
	for n := 2; seen[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	return id
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
