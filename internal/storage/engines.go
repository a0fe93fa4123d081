package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/fawazir-bot/internal/service"
)

// EngineStorage keeps one game engine per chat in memory.
type EngineStorage struct {
	mu      sync.Mutex
	engines map[int64]*service.QuizEngine
}

// NewEngineStorage creates a new EngineStorage.
func NewEngineStorage() *EngineStorage {
	return &EngineStorage{
		engines: make(map[int64]*service.QuizEngine),
	}
}

// GetOrCreate returns the engine of a chat, creating it with newEngine on first use.
func (s *EngineStorage) GetOrCreate(chatID int64, newEngine func() *service.QuizEngine) *service.QuizEngine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.engines[chatID]; ok {
		return e
	}

	e := newEngine()
	s.engines[chatID] = e
	return e
}

// Get returns the engine of a chat.
func (s *EngineStorage) Get(chatID int64) (*service.QuizEngine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.engines[chatID]
	return e, ok
}

// Delete closes and removes the engine of a chat.
func (s *EngineStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.engines[chatID]; ok {
		e.Close()
		delete(s.engines, chatID)
	}
}

// Len returns the number of stored engines.
func (s *EngineStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.engines)
}

// Sweep closes and removes engines whose last activity is before idleSince.
func (s *EngineStorage) Sweep(idleSince time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for chatID, e := range s.engines {
		if e.LastActivity().Before(idleSince) {
			e.Close()
			delete(s.engines, chatID)
			removed++
		}
	}

	return removed
}
