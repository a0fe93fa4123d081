package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
	"github.com/aliskhannn/fawazir-bot/internal/service"
)

type Handler struct {
	bot       *tgbotapi.BotAPI
	sender    Sender
	logger    *zap.Logger
	engines   EngineStorage
	screens   ScreenStorage
	newEngine EngineFactory
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	engines EngineStorage,
	screens ScreenStorage,
	newEngine EngineFactory,
) *Handler {
	return &Handler{
		bot:       bot,
		sender:    bot,
		logger:    logger,
		engines:   engines,
		screens:   screens,
		newEngine: newEngine,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	userID := chatID
	if update.Message.From != nil {
		userID = update.Message.From.ID
	}

	if !update.Message.IsCommand() {
		_ = h.withErrorHandling(h.handleStart(userID))(ctx, chatID)
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.handleStart(userID))(ctx, chatID)

	case "levels":
		_ = h.withErrorHandling(h.handleLevels(userID))(ctx, chatID)

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

// engine returns the game of the chat, creating it on first use.
func (h *Handler) engine(chatID, userID int64) *service.QuizEngine {
	return h.engines.GetOrCreate(chatID, func() *service.QuizEngine {
		h.logger.Info("new game", zap.Int64("chat_id", chatID), zap.Int64("user_id", userID))
		return h.newEngine(chatID, userID, &chatNotifier{h: h, chatID: chatID})
	})
}

// handleStart shows the current screen of the game in a new message.
func (h *Handler) handleStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		e := h.engine(chatID, userID)

		h.screens.Delete(chatID)
		h.render(chatID, e.Snapshot())

		return nil
	}
}

// handleLevels opens the level map from any screen.
func (h *Handler) handleLevels(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		e := h.engine(chatID, userID)

		h.screens.Delete(chatID)
		if e.Snapshot().Screen == entities.ScreenMenu {
			e.StartGame()
		} else {
			e.GoToLevelList()
		}

		// A no-op transition publishes nothing, so the new message is rendered here.
		h.render(chatID, e.Snapshot())

		return nil
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.sender.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
