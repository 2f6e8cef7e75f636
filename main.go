package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/shunsk-dev/voice-order-memo/config"
	"github.com/shunsk-dev/voice-order-memo/llm"
	"github.com/shunsk-dev/voice-order-memo/notify"
	"github.com/shunsk-dev/voice-order-memo/server"
	"github.com/shunsk-dev/voice-order-memo/store"
	"github.com/shunsk-dev/voice-order-memo/stt"
)

func main() {
	// Load .env if present
	envLoaded := godotenv.Load() == nil

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if !envLoaded {
		logger.Info().Msg("no .env file found, falling back to environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	transcriber, err := stt.NewWhisperClient(cfg.OpenAIAPIKey, cfg.WhisperModel, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init transcriber")
	}
	chat, err := llm.NewClient(cfg.OpenAIAPIKey, cfg.ChatModel, cfg.Names, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init chat client")
	}
	records, err := store.NewExcelStore(cfg.DataFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init record store")
	}
	if err := records.Init(); err != nil {
		logger.Fatal().Err(err).Msg("create workbook")
	}

	var notifier server.Notifier
	if cfg.LineChannelToken != "" {
		n, err := notify.NewLineNotifier(cfg.LineChannelToken, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("init line notifier")
		}
		notifier = n
	} else {
		logger.Warn().Msg("LINE_CHANNEL_ACCESS_TOKEN not set, notifications disabled")
	}

	srv, err := server.New(cfg, server.Deps{
		Transcriber: transcriber,
		Extractor:   chat,
		Summarizer:  chat,
		Notifier:    notifier,
		Records:     records,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	logger.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	if err := srv.Listen(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
