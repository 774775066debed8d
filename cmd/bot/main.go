package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tarjimon/internal/config"
	"tarjimon/internal/domain"
	"tarjimon/internal/handler"
	"tarjimon/internal/metrics"
	"tarjimon/internal/middleware"
	"tarjimon/internal/repository"
	"tarjimon/internal/repository/memory"
	"tarjimon/internal/repository/postgres"
	"tarjimon/internal/repository/redis"
	"tarjimon/internal/service"
	"tarjimon/internal/translator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration first so the logger gets the configured level
	cfg, cfgErr := config.Load()

	level := "info"
	if cfgErr == nil {
		level = cfg.LogLevel
	}

	logger, err := newLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Fatal("Failed to load config", zap.Error(cfgErr))
	}

	logger.Info("Starting Tarjimon Bot",
		zap.String("session_store", cfg.SessionStore),
		zap.String("translator", cfg.TranslatorEngine),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg, logger); err != nil {
				logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	// Session store
	sessions, closeStore, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer closeStore()

	logger.Info("Session store initialized")

	// Translation gateway
	engine, err := translator.ParseEngine(cfg.TranslatorEngine)
	if err != nil {
		logger.Fatal("Invalid translator engine", zap.Error(err))
	}

	tr, err := translator.New(translator.Config{
		Engine:               engine,
		LibreTranslateURL:    cfg.LibreTranslateURL,
		LibreTranslateAPIKey: cfg.LibreTranslateAPIKey,
		Timeout:              cfg.TranslatorTimeout,
		OpenAI: translator.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		},
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create translator", zap.Error(err))
	}

	// Initialize services
	translationService := service.NewTranslationService(tr, m, logger)
	conversationService := service.NewConversationService(sessions, translationService, domain.DefaultCatalog(), logger)
	janitor := service.NewSessionJanitor(sessions, cfg.SessionIdleTTL, m, logger)

	onError := func(err error, c tele.Context) {
		logger.Error("Unhandled bot error", zap.Error(err))
	}

	// Per-user FIFO dispatch; relies on the synchronous poller
	queue := handler.NewUserQueue(onError)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.BotToken,
		Poller:      &tele.LongPoller{Timeout: cfg.PollTimeout},
		Synchronous: true,
		OnError:     onError,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	bot.Use(
		queue.Middleware,
		middleware.Recover(logger),
		middleware.Logger(logger),
		middleware.Metrics(m),
	)

	h := handler.NewHandler(ctx, bot, conversationService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start cleanup job in background
	go janitor.Run(ctx, time.Hour)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()
	queue.Wait()

	logger.Info("Bot stopped gracefully")
}

// newLogger builds a production logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = lvl
	return zc.Build()
}

// newSessionStore opens the configured session store and returns its closer
func newSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.SessionRepository, func(), error) {
	switch cfg.SessionStore {
	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := client.Close(); err != nil {
				logger.Warn("Failed to close redis client", zap.Error(err))
			}
		}
		return redis.NewSessionRepo(client, cfg.SessionIdleTTL, ""), closer, nil

	case config.StorePostgres:
		db, err := postgres.Connect(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(db, "file://migrations", logger); err != nil {
			db.Close()
			return nil, nil, err
		}
		closer := func() {
			if err := db.Close(); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		}
		return postgres.NewSessionRepo(db), closer, nil

	default:
		return memory.NewSessionRepo(), func() {}, nil
	}
}
