package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(cb *tgbotapi.CallbackQuery) {
	switch cb.Data {
	case buildCompletionCloseCallback():
		h.handleCompletionClose(cb)
	default:
		return
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

// handleCompletionClose dismisses the congratulation message. This is
// the only way it goes away; it never hides on its own.
func (h *Handler) handleCompletionClose(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	del := tgbotapi.NewDeleteMessage(cb.Message.Chat.ID, cb.Message.MessageID)
	if _, err := h.bot.Request(del); err != nil {
		h.logger.Error("failed to delete completion message",
			zap.Int64("chat_id", cb.Message.Chat.ID),
			zap.Error(err),
		)
	}
}
