package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/alvarogh/jincana-bot/internal/config"
	"github.com/alvarogh/jincana-bot/internal/delivery/telegram"
	"github.com/alvarogh/jincana-bot/internal/logger"
	"github.com/alvarogh/jincana-bot/internal/repository"
	"github.com/alvarogh/jincana-bot/internal/service"
	"github.com/alvarogh/jincana-bot/internal/storage"
)

// contentHint explains how to provide the question document when the
// configured source is plainly unusable at startup.
const contentHint = `El bot no puede leer el contenido de la jincana.

Opciones:
  1. Coloca un contenido.json junto al bot y apunta CONTENT_SOURCE a él:
       CONTENT_SOURCE=assets/contenido.json
  2. O sírvelo por HTTP y usa la URL:
       py -m http.server 5173        # o: npx http-server -p 5173 -c-1
       CONTENT_SOURCE=http://localhost:5173/contenido.json

El contenido debe ser un array JSON de preguntas
(campos: titulo, pista, imagen, respuesta, felicidades).`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	contentRepo := repository.NewContentRepository(cfg.Content.Source, cfg.Content.Timeout)

	// Fail fast with instructions when the content source cannot work
	// at all, instead of failing on the first /start.
	if err := contentRepo.Probe(); err != nil {
		fmt.Fprintln(os.Stderr, contentHint)
		zl.Fatal("content source unusable", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot API", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Empezar la jincana",
		},
		{
			Command:     "tablero",
			Description: "Ver el tablero de preguntas",
		},
		{
			Command:     "trampa",
			Description: "Ayuda secreta (con contraseña)",
		},
		{
			Command:     "ayuda",
			Description: "Ayuda",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameStore := storage.NewGameStore()
	gameService := service.NewGameService(contentRepo, gameStore, cfg.Cheat.Secret)

	handler := telegram.NewHandler(bot, zl, gameService, cfg.UI)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
