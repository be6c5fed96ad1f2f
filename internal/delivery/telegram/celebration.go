package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// celebrate sends the transient confetti effect; it removes itself
// after the configured lifetime.
func (h *Handler) celebrate(chatID int64) {
	sent, err := h.bot.Send(newPlainMessage(chatID, confettiText))
	if err != nil {
		h.logger.Error("failed to send confetti",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	time.AfterFunc(h.ui.ConfettiDuration, func() {
		if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, sent.MessageID)); err != nil {
			h.logger.Debug("failed to delete confetti message",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
	})
}

// showCompletion sends the persistent congratulation with a dismiss
// button. It stays until the user presses Cerrar; it is never re-shown.
func (h *Handler) showCompletion(chatID int64, text string) {
	if text == "" {
		text = completionDefault
	}

	msg := newHTMLMessage(chatID, "<b>"+completionTitle+"</b>\n\n"+text)
	msg.ReplyMarkup = buildCompletionKeyboard()
	h.send(msg)
}
