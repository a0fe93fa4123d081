package telegram

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/fawazir-bot/internal/service"
)

// chatNotifier publishes the snapshots of one chat's game.
type chatNotifier struct {
	h      *Handler
	chatID int64
}

func (n *chatNotifier) Render(snap service.Snapshot) {
	n.h.render(n.chatID, snap)
}

func (n *chatNotifier) Celebrate(level int) {
	n.h.send(newHTMLMessage(n.chatID, msgCelebrate(level)))
}

// render shows snap in the chat's screen message. Snapshots older than the
// one already shown are dropped.
func (h *Handler) render(chatID int64, snap service.Snapshot) {
	prev, ok := h.screens.Advance(chatID, snap.Version)
	if !ok {
		h.logger.Debug("stale snapshot dropped",
			zap.Int64("chat_id", chatID),
			zap.Uint64("version", snap.Version),
			zap.Uint64("shown", prev.Version),
		)
		return
	}

	text := renderScreen(snap)
	kb := buildScreenKeyboard(snap)

	if prev.MessageID != 0 {
		edit := newHTMLEdit(chatID, prev.MessageID, text)
		edit.ReplyMarkup = kb

		_, err := h.sender.Send(edit)
		if err == nil || isNotModified(err) {
			return
		}

		h.logger.Warn("failed to edit screen, sending a new one",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", prev.MessageID),
			zap.Error(err),
		)
	}

	msg := newHTMLMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}

	sent, err := h.sender.Send(msg)
	if err != nil {
		h.logger.Error("failed to send screen",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	h.screens.Store(chatID, sent.MessageID, snap.Version)
}
