package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Minesh6684/OpenAI-Translator/internal/audio"
	"github.com/Minesh6684/OpenAI-Translator/internal/audio/device"
	"github.com/Minesh6684/OpenAI-Translator/internal/bot"
	"github.com/Minesh6684/OpenAI-Translator/internal/cli"
	"github.com/Minesh6684/OpenAI-Translator/internal/client"
	"github.com/Minesh6684/OpenAI-Translator/internal/clipboard"
	"github.com/Minesh6684/OpenAI-Translator/internal/config"
	"github.com/Minesh6684/OpenAI-Translator/internal/repository"
	"github.com/Minesh6684/OpenAI-Translator/internal/service"
	"github.com/Minesh6684/OpenAI-Translator/internal/storage/cache"
	"github.com/Minesh6684/OpenAI-Translator/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// history stays a nil interface when disabled.
	var history service.RepositoryI
	if cfg.History.Enabled {
		conn, err := db.InitDB(cfg.DB)
		if err != nil {
			logger.Fatal("failed init db", zap.Error(err))
		}
		defer conn.Close()

		history = repository.NewRepository(conn)
	}

	clients := client.InitClients(cfg.API, cfg.App)
	sessions := cache.NewCache(cfg.App.DefaultLanguage)
	opts := service.Options{
		NotificationTTL: cfg.App.NotificationTTL,
		HistoryLimit:    cfg.History.Limit,
	}

	logger.Info("starting translator",
		zap.String("mode", cfg.Mode),
		zap.String("api", cfg.API.BaseURL),
		zap.Bool("history", cfg.History.Enabled),
	)

	switch cfg.Mode {
	case config.ModeTelegram:
		api, err := bot.NewBotAPI(cfg.BotToken, cfg.Env)
		if err != nil {
			logger.Fatal("failed to connect to telegram", zap.Error(err))
			return
		}

		services := service.InitServices(clients, bot.NewChatPlayer(api), bot.NewChatClipboard(api), history, sessions, opts, logger)
		bot.NewTelegramAPI(api, services, cfg.App.SpeechFeedback, logger).Start(ctx, api)

	default:
		speaker := audio.NewSpeaker(audio.DecodeMP3, device.NewOutput, logger)

		services := service.InitServices(clients, speaker, clipboard.NewSystem(), history, sessions, opts, logger)
		if err := cli.NewTerminal(services, os.Stdin, os.Stdout, cfg.App.SpeechFeedback, logger).Run(ctx); err != nil {
			logger.Error("terminal stopped", zap.Error(err))
		}
	}

	logger.Info("translator stopped")
}
