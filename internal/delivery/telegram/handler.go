package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/alvarogh/jincana-bot/internal/config"
	"github.com/alvarogh/jincana-bot/internal/domain/entities"
	"github.com/alvarogh/jincana-bot/internal/service"
)

type GameService interface {
	Start(ctx context.Context, chatID int64) (entities.Game, error)
	Snapshot(chatID int64) (entities.Game, error)
	Submit(chatID int64, answer string) (service.SubmitResult, error)
	CheatAnswer(chatID int64, secret string) (string, error)
	CompletionMessage(chatID int64) string
}

type Handler struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
	game   GameService
	toasts *toastPresenter
	ui     config.UI

	mu            sync.Mutex
	awaitingCheat map[int64]bool // chats whose next message is a cheat password
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	game GameService,
	ui config.UI,
) *Handler {
	return &Handler{
		bot:           bot,
		logger:        logger,
		game:          game,
		toasts:        newToastPresenter(bot, logger, ui.ToastDuration),
		ui:            ui,
		awaitingCheat: make(map[int64]bool),
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

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
		h.handleCallback(update.CallbackQuery)
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

	if update.Message.IsCommand() {
		// A command cancels a pending cheat password prompt.
		h.setAwaitingCheat(chatID, false)

		switch update.Message.Command() {
		case "start":
			h.handleStart(ctx, chatID)
		case "tablero":
			h.handleBoard(chatID)
		case "trampa":
			h.handleCheatCommand(chatID)
		case "ayuda", "help":
			h.send(newHTMLMessage(chatID, msgHelp))
		default:
			h.send(newHTMLMessage(chatID, msgUnknownCmd))
		}
		return
	}

	if h.isAwaitingCheat(chatID) {
		h.setAwaitingCheat(chatID, false)
		h.handleCheatPassword(chatID, update.Message.Text)
		return
	}

	h.handleAnswer(chatID, update.Message.Text)
}

func (h *Handler) isAwaitingCheat(chatID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.awaitingCheat[chatID]
}

func (h *Handler) setAwaitingCheat(chatID int64, awaiting bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if awaiting {
		h.awaitingCheat[chatID] = true
	} else {
		delete(h.awaitingCheat, chatID)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
