package telegram

import (
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// toastKind selects the fixed visual treatment of a toast.
type toastKind string

const (
	toastInfo    toastKind = "info"
	toastSuccess toastKind = "success"
	toastError   toastKind = "error"
)

func (k toastKind) prefix() string {
	switch k {
	case toastSuccess:
		return "✅ "
	case toastError:
		return "❌ "
	default:
		return "ℹ️ "
	}
}

type pendingToast struct {
	messageID int
	timer     *time.Timer
}

// botSender is the slice of the Bot API the presenter needs; it keeps
// the presenter testable without a live Telegram endpoint.
type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// toastPresenter shows transient status messages that delete themselves
// after a fixed duration. A chat has at most one toast at a time: a new
// toast removes the pending one and restarts the clock, so the visible
// duration is always measured from the most recent show.
type toastPresenter struct {
	bot    botSender
	logger *zap.Logger
	ttl    time.Duration

	mu      sync.Mutex
	pending map[int64]pendingToast
}

func newToastPresenter(bot botSender, logger *zap.Logger, ttl time.Duration) *toastPresenter {
	return &toastPresenter{
		bot:     bot,
		logger:  logger,
		ttl:     ttl,
		pending: make(map[int64]pendingToast),
	}
}

// show sends a toast to the chat, preempting any toast still visible.
func (p *toastPresenter) show(chatID int64, text string, kind toastKind) {
	p.mu.Lock()
	if prev, ok := p.pending[chatID]; ok {
		prev.timer.Stop()
		delete(p.pending, chatID)
		p.deleteMessage(chatID, prev.messageID)
	}
	p.mu.Unlock()

	sent, err := p.bot.Send(newPlainMessage(chatID, kind.prefix()+text))
	if err != nil {
		p.logger.Error("failed to send toast",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending[chatID] = pendingToast{
		messageID: sent.MessageID,
		timer:     time.AfterFunc(p.ttl, func() { p.expire(chatID, sent.MessageID) }),
	}
}

// expire removes a toast whose timer fired, unless a newer toast
// already replaced it.
func (p *toastPresenter) expire(chatID int64, messageID int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cur, ok := p.pending[chatID]
	if !ok || cur.messageID != messageID {
		return
	}
	delete(p.pending, chatID)
	p.deleteMessage(chatID, messageID)
}

func (p *toastPresenter) deleteMessage(chatID int64, messageID int) {
	if _, err := p.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		p.logger.Debug("failed to delete toast message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}
