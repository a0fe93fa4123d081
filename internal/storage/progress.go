package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

// ProgressStorage is an in-memory progress repository. Values are lost on restart.
type ProgressStorage struct {
	mu     sync.RWMutex
	values map[string]entities.CompletedLevels
}

// NewProgressStorage creates a new ProgressStorage.
func NewProgressStorage() *ProgressStorage {
	return &ProgressStorage{
		values: make(map[string]entities.CompletedLevels),
	}
}

// Get returns the completed levels stored under key.
func (s *ProgressStorage) Get(_ context.Context, key string) (entities.CompletedLevels, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	completed, ok := s.values[key]
	if !ok {
		return entities.CompletedLevels{}, entities.ErrProgressNotFound
	}
	return completed, nil
}

// Replace stores the full set under key. A stored level is never dropped.
func (s *ProgressStorage) Replace(_ context.Context, key string, completed entities.CompletedLevels) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = s.values[key].Union(completed)
	return nil
}
