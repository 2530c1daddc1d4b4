package main

import (
	"fmt"
	"log"

	"github.com/diegoclair/clockin-bot/internal/config"
	"github.com/diegoclair/clockin-bot/internal/database"
	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"github.com/diegoclair/clockin-bot/internal/domain/service"
	"github.com/diegoclair/clockin-bot/internal/logger"
	"github.com/diegoclair/clockin-bot/internal/messenger"
	"github.com/diegoclair/clockin-bot/migrator/sqlite"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type app struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *database.DB
	messenger contract.Messenger
	services  *service.Instance
}

// setup loads configuration, opens and migrates the database. It does not
// touch the chat platforms.
func setup() (*app, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	zl.Info("running migrations", zap.String("path", cfg.DatabasePath))
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &app{cfg: cfg, log: zl, db: db}, nil
}

// newApp is setup plus the messaging clients and domain services.
func newApp() (*app, error) {
	a, err := setup()
	if err != nil {
		return nil, err
	}

	// Interfaces stay nil for platforms without a token so the messenger
	// can tell they are not configured.
	var slackClient contract.SlackClient
	if a.cfg.SlackBotToken != "" {
		slackClient = slack.New(a.cfg.SlackBotToken)
	}

	var telegramClient contract.TelegramClient
	if a.cfg.TelegramBotToken != "" {
		bot, err := tgbotapi.NewBotAPI(a.cfg.TelegramBotToken)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
		}
		telegramClient = bot
	}

	if len(a.cfg.NotifyTargets) == 0 {
		a.log.Warn("NOTIFY_TARGETS is empty, reminders will be marked without being sent")
	}

	a.messenger = messenger.New(slackClient, telegramClient, a.log.Named("messenger"))
	a.services = service.NewInstance(database.NewInstance(a.db), a.messenger, a.cfg, a.log)

	return a, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Error("failed to close database", zap.Error(err))
	}
	a.log.Sync()
}
