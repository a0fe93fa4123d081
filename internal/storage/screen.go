package storage

import (
	"sync"
	"time"
)

// ScreenMessage is the bot message a chat's game screen is rendered into.
type ScreenMessage struct {
	ChatID    int64
	MessageID int
	Version   uint64 // version of the last snapshot rendered into the message
	UpdatedAt time.Time
}

// ScreenStorage remembers the screen message of every chat.
type ScreenStorage struct {
	mu       sync.RWMutex
	messages map[int64]ScreenMessage
}

func NewScreenStorage() *ScreenStorage {
	return &ScreenStorage{
		messages: make(map[int64]ScreenMessage),
	}
}

func (s *ScreenStorage) Get(chatID int64) (ScreenMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[chatID]
	return msg, ok
}

// Store remembers the message a chat's screen lives in. The recorded version never decreases.
func (s *ScreenStorage) Store(chatID int64, messageID int, version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.messages[chatID]; ok && prev.Version > version {
		version = prev.Version
	}

	s.messages[chatID] = ScreenMessage{
		ChatID:    chatID,
		MessageID: messageID,
		Version:   version,
		UpdatedAt: time.Now(),
	}
}

// Advance records that version is being rendered. It returns the previous message
// and false when an equal or newer version was already rendered.
func (s *ScreenStorage) Advance(chatID int64, version uint64) (prev ScreenMessage, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.messages[chatID]
	if had && prev.Version >= version {
		return prev, false
	}

	next := prev
	next.ChatID = chatID
	next.Version = version
	next.UpdatedAt = time.Now()
	s.messages[chatID] = next

	return prev, true
}

func (s *ScreenStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, chatID)
}
