package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	userID := chatID
	if cb.From != nil {
		userID = cb.From.ID
	}
	data := decodeCallback(cb.Data)

	notice := ""
	switch data.Action {
	case actionPage:
		_ = h.withErrorHandling(h.handlePage(cb.Message.MessageID, data))(ctx, chatID)
	case actionLocked:
		notice = msgLevelLocked
	default:
		notice = h.handleIntent(chatID, userID, data)
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, notice)
}

// handleIntent forwards a button press to the chat's game and returns a notice
// for the player when the press is ignored.
func (h *Handler) handleIntent(chatID, userID int64, data callbackData) string {
	e := h.engine(chatID, userID)

	switch data.Action {
	case actionStart:
		e.StartGame()

	case actionLevel:
		level, ok := data.intParam(0)
		if !ok {
			h.logger.Warn("invalid level callback", zap.String("data", data.Raw))
			return ""
		}
		if !e.Snapshot().Completed.IsUnlocked(level) {
			return msgLevelLocked
		}
		e.SelectLevel(level)

	case actionAnswer:
		index, ok1 := data.intParam(0)
		option, ok2 := data.intParam(1)
		if !ok1 || !ok2 {
			h.logger.Warn("invalid answer callback", zap.String("data", data.Raw))
			return ""
		}

		snap := e.Snapshot()
		if snap.Screen != entities.ScreenGame || snap.Session == nil || snap.Session.CurrentIndex != index {
			return msgStaleButton
		}
		e.SubmitAnswer(option)

	case actionList:
		e.GoToLevelList()

	case actionRetry:
		e.RetryLevel()

	case actionNext:
		e.NextLevel()

	default:
		h.logger.Debug("unknown callback", zap.String("data", data.Raw))
	}

	return ""
}

// handlePage shows another page of the level map in place.
func (h *Handler) handlePage(messageID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		page, ok := data.intParam(0)
		if !ok {
			h.logger.Warn("invalid page callback", zap.String("data", data.Raw))
			return nil
		}

		e, ok := h.engines.Get(chatID)
		if !ok {
			return nil
		}

		snap := e.Snapshot()
		if snap.Screen != entities.ScreenLevelSelect {
			return nil
		}

		page = clampPage(page)
		edit := newHTMLEdit(chatID, messageID, renderLevelSelect(snap.Completed, page))
		kb := buildLevelsKeyboard(snap.Completed, page)
		edit.ReplyMarkup = &kb

		if _, err := h.sender.Send(edit); err != nil && !isNotModified(err) {
			return err
		}

		return nil
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.sender.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
