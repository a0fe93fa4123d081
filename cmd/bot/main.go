package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/fawazir-bot/internal/config"
	"github.com/aliskhannn/fawazir-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/fawazir-bot/internal/delivery/telegram"
	"github.com/aliskhannn/fawazir-bot/internal/infra/claude"
	"github.com/aliskhannn/fawazir-bot/internal/infra/gemini"
	"github.com/aliskhannn/fawazir-bot/internal/infra/postgres"
	"github.com/aliskhannn/fawazir-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/fawazir-bot/internal/infra/sqlite"
	"github.com/aliskhannn/fawazir-bot/internal/logger"
	"github.com/aliskhannn/fawazir-bot/internal/service"
	"github.com/aliskhannn/fawazir-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("telegram bot: %w", err)
	}

	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "الشاشة الحالية",
		},
		{
			Command:     "levels",
			Description: "قائمة المراحل",
		},
		{
			Command:     "help",
			Description: "المساعدة",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	llm, closeLLM, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLLM()

	progressRepo, closeStore, err := newProgressRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	lg.Info("backends ready",
		zap.String("content", cfg.Content.Backend),
		zap.String("storage", cfg.Storage.Driver),
	)

	riddleService := service.NewRiddleService(llm, cfg.Content.Timeout, lg.Named("riddles"))
	scheduler := service.NewTimerScheduler()

	engines := storage.NewEngineStorage()
	screens := storage.NewScreenStorage()

	newEngine := func(chatID, userID int64, notifier service.Notifier) *service.QuizEngine {
		progress := service.NewProgressService(progressRepo, service.ProgressKey(cfg.Storage.Namespace, userID))
		return service.NewQuizEngine(
			ctx,
			riddleService,
			progress,
			scheduler,
			notifier,
			lg.With(zap.Int64("chat_id", chatID)),
			cfg.Game.FeedbackDelay,
		)
	}

	sweeper := service.NewSweeperService(engines, cfg.Sessions.SweepSchedule, cfg.Sessions.IdleTTL, lg.Named("sweeper"))
	go sweeper.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpapi.NewRouter(engines),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("http server failed", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	handler := telegram.NewHandler(bot, lg.Named("telegram"), engines, screens, newEngine)
	return handler.Run(ctx)
}

func newLLMClient(ctx context.Context, cfg *config.Config) (service.LLMClient, func(), error) {
	switch cfg.Content.Backend {
	case config.BackendAnthropic:
		cl, err := claude.New(cfg.Content.APIKey, cfg.Content.Model)
		if err != nil {
			return nil, nil, err
		}
		return cl, func() {}, nil

	default:
		cl, err := gemini.New(ctx, cfg.Content.APIKey, cfg.Content.Model)
		if err != nil {
			return nil, nil, err
		}
		return cl, func() { _ = cl.Close() }, nil
	}
}

func newProgressRepository(ctx context.Context, cfg *config.Config) (service.ProgressRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return storage.NewProgressStorage(), func() {}, nil

	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil

	default:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}

		repo := repository.NewProgressRepository(pool, postgres.NewTransactor(pool))
		if err = repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	}
}
