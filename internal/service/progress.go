package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

// DefaultProgressNamespace is the fixed namespace progress values are stored under.
const DefaultProgressNamespace = "fawazir_progress"

// ProgressKey builds the storage key of one player's progress.
func ProgressKey(namespace string, userID int64) string {
	return namespace + ":" + strconv.FormatInt(userID, 10)
}

// ProgressService is the progress store of a single player.
type ProgressService struct {
	repository ProgressRepository
	key        string
}

// NewProgressService creates a progress store bound to key.
func NewProgressService(repository ProgressRepository, key string) *ProgressService {
	return &ProgressService{repository: repository, key: key}
}

// Load returns the stored completed levels. A player without stored progress has none.
func (s *ProgressService) Load(ctx context.Context) (entities.CompletedLevels, error) {
	completed, err := s.repository.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, entities.ErrProgressNotFound) {
			return entities.NewCompletedLevels(), nil
		}
		return entities.CompletedLevels{}, fmt.Errorf("load progress %s: %w", s.key, err)
	}

	return completed, nil
}

// Save replaces the stored value with the full completed set.
func (s *ProgressService) Save(ctx context.Context, completed entities.CompletedLevels) error {
	if err := s.repository.Replace(ctx, s.key, completed); err != nil {
		return fmt.Errorf("save progress %s: %w", s.key, err)
	}
	return nil
}
