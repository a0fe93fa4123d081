package service

import (
	"context"
	"time"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

// RiddleProvider returns the riddles of a level. Implementations never fail:
// they always return a valid set of entities.RiddlesPerLevel riddles.
type RiddleProvider interface {
	FetchRiddles(ctx context.Context, level int) []entities.Riddle
}

// ProgressStore holds one player's completed levels.
type ProgressStore interface {
	Load(ctx context.Context) (entities.CompletedLevels, error)
	Save(ctx context.Context, completed entities.CompletedLevels) error
}

// ProgressRepository persists completed-level sets under string keys.
type ProgressRepository interface {
	Get(ctx context.Context, key string) (entities.CompletedLevels, error)
	Replace(ctx context.Context, key string, completed entities.CompletedLevels) error
}

// LLMClient is a text-generation backend.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs callbacks after a delay without blocking the caller.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Notifier is the presentation side of an engine.
type Notifier interface {
	Render(snap Snapshot)
	Celebrate(level int)
}
