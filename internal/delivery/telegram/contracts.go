package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/fawazir-bot/internal/service"
	"github.com/aliskhannn/fawazir-bot/internal/storage"
)

// Sender is the part of the Bot API used to publish screens.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type EngineStorage interface {
	GetOrCreate(chatID int64, newEngine func() *service.QuizEngine) *service.QuizEngine
	Get(chatID int64) (*service.QuizEngine, bool)
}

type ScreenStorage interface {
	Store(chatID int64, messageID int, version uint64)
	Advance(chatID int64, version uint64) (storage.ScreenMessage, bool)
	Delete(chatID int64)
}

// EngineFactory creates the game of a chat. Snapshots of the game are
// published to notifier.
type EngineFactory func(chatID, userID int64, notifier service.Notifier) *service.QuizEngine
