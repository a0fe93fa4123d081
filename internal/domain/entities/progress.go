package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

var ErrProgressNotFound = errors.New("progress not found")

// CompletedLevels is the set of levels a player has passed at least once.
// Values are treated as immutable: With returns a new set.
type CompletedLevels struct {
	levels map[int]struct{}
}

// NewCompletedLevels builds a set from a list of level numbers, dropping duplicates
// and numbers outside the map.
func NewCompletedLevels(levels ...int) CompletedLevels {
	set := make(map[int]struct{}, len(levels))
	for _, n := range levels {
		if IsValidLevel(n) {
			set[n] = struct{}{}
		}
	}
	return CompletedLevels{levels: set}
}

// Contains reports whether level n has been completed.
func (c CompletedLevels) Contains(n int) bool {
	_, ok := c.levels[n]
	return ok
}

// IsUnlocked reports whether level n can be played: the first level is always open,
// every other level opens once the previous one is completed.
func (c CompletedLevels) IsUnlocked(n int) bool {
	if !IsValidLevel(n) {
		return false
	}
	return n == 1 || c.Contains(n-1)
}

// Len returns the number of completed levels.
func (c CompletedLevels) Len() int {
	return len(c.levels)
}

// With returns a set that additionally contains level n. The receiver is not modified.
func (c CompletedLevels) With(n int) CompletedLevels {
	if c.Contains(n) || !IsValidLevel(n) {
		return c
	}

	set := make(map[int]struct{}, len(c.levels)+1)
	for k := range c.levels {
		set[k] = struct{}{}
	}
	set[n] = struct{}{}

	return CompletedLevels{levels: set}
}

// Union returns a set containing the levels of both sets.
func (c CompletedLevels) Union(other CompletedLevels) CompletedLevels {
	return NewCompletedLevels(append(c.Levels(), other.Levels()...)...)
}

// Levels returns the completed level numbers in ascending order.
func (c CompletedLevels) Levels() []int {
	out := make([]int, 0, len(c.levels))
	for n := range c.levels {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// MarshalJSON encodes the set as an ascending JSON array.
func (c CompletedLevels) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Levels())
}

// UnmarshalJSON decodes a JSON array of level numbers.
func (c *CompletedLevels) UnmarshalJSON(data []byte) error {
	var levels []int
	if err := json.Unmarshal(data, &levels); err != nil {
		return fmt.Errorf("decode completed levels: %w", err)
	}
	*c = NewCompletedLevels(levels...)
	return nil
}
