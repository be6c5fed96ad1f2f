package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/alvarogh/jincana-bot/internal/service"
)

// handleStart runs the startup sequence for a chat: load the content,
// build the initial state and perform the first render. Any failure is
// caught here and degrades to a visible error state instead of leaving
// the chat blank; there is no retry, the user starts over with /start.
func (h *Handler) handleStart(ctx context.Context, chatID int64) {
	game, err := h.game.Start(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to start game",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.toasts.show(chatID, msgLoadFailed, toastError)
		h.send(newPlainMessage(chatID, err.Error()))
		return
	}

	h.logger.Info("game started",
		zap.Int64("chat_id", chatID),
		zap.Int("questions", len(game.Questions)),
	)

	h.send(newHTMLMessage(chatID, msgWelcome))
	h.renderBoard(chatID)
}

// handleBoard re-renders the current board on demand.
func (h *Handler) handleBoard(chatID int64) {
	if _, err := h.game.Snapshot(chatID); err != nil {
		h.send(newHTMLMessage(chatID, msgNoGame))
		return
	}
	h.renderBoard(chatID)
}

// handleAnswer runs the submit algorithm for a plain text message.
func (h *Handler) handleAnswer(chatID int64, text string) {
	res, err := h.game.Submit(chatID, text)
	switch {
	case errors.Is(err, service.ErrNoGame):
		h.send(newHTMLMessage(chatID, msgNoGame))

	case errors.Is(err, service.ErrGameFinished):
		h.send(newHTMLMessage(chatID, msgAlreadyDone))

	case err != nil:
		h.logger.Error("failed to submit answer",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.toasts.show(chatID, msgInternalError, toastError)

	case !res.Correct:
		h.send(newPlainMessage(chatID, msgFeedbackWrong))
		h.toasts.show(chatID, toastWrongAnswer, toastError)
		h.send(newAnswerPrompt(chatID))

	default:
		h.send(newPlainMessage(chatID, msgFeedbackOK))

		// Let the success feedback stay visible before re-rendering.
		completed, next := res.Completed, res.NextOrdinal
		time.AfterFunc(h.ui.FeedbackDelay, func() {
			h.renderBoard(chatID)
			if completed {
				h.completeAll(chatID)
			} else {
				h.toasts.show(chatID, fmt.Sprintf(toastUnlockedFmt, next), toastSuccess)
			}
		})
	}
}

// completeAll announces the end of the jincana: confetti, toast and the
// persistent congratulation. Reached exactly once per session.
func (h *Handler) completeAll(chatID int64) {
	h.celebrate(chatID)
	h.toasts.show(chatID, toastCompleted, toastSuccess)
	h.showCompletion(chatID, h.game.CompletionMessage(chatID))
}

// handleCheatCommand prompts for the shared secret; the chat's next
// plain message is treated as the password.
func (h *Handler) handleCheatCommand(chatID int64) {
	h.setAwaitingCheat(chatID, true)

	msg := tgbotapi.NewMessage(chatID, msgCheatPrompt)
	msg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true, Selective: true}
	h.send(msg)
}

// handleCheatPassword resolves a pending cheat prompt. A wrong secret
// only produces an error toast; nothing is counted or locked out. With
// the right secret the active question's answer is handed over
// verbatim, ready to copy, together with a fresh answer prompt.
func (h *Handler) handleCheatPassword(chatID int64, password string) {
	answer, err := h.game.CheatAnswer(chatID, password)
	switch {
	case errors.Is(err, service.ErrWrongSecret):
		h.toasts.show(chatID, toastWrongPassword, toastError)

	case errors.Is(err, service.ErrNoGame):
		h.send(newHTMLMessage(chatID, msgNoGame))

	case errors.Is(err, service.ErrGameFinished):
		// All questions answered, nothing to fill in.

	case err != nil:
		h.logger.Error("cheat lookup failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)

	default:
		h.send(newHTMLMessage(chatID, "✍️ <code>"+html.EscapeString(answer)+"</code>"))
		h.send(newAnswerPrompt(chatID))
		h.toasts.show(chatID, toastAnswerFilled, toastSuccess)
	}
}
