package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"calpages/internal/adapters/discord"
	"calpages/internal/adapters/web"
	"calpages/internal/application"
	"calpages/internal/config"
	"calpages/internal/infrastructure/database"
	"calpages/internal/infrastructure/database/sqlc_generated"
	"calpages/internal/infrastructure/i18n"
	"calpages/internal/infrastructure/session"
)

const sessionTTL = 30 * 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("❌ server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	q := sqlc_generated.New(pool)
	eventTypeRepo := database.NewEventTypeRepository(q)
	userRepo := database.NewUserRepository(q, eventTypeRepo)

	tr := i18n.NewTranslator(cfg.DefaultLocale, logger)
	eventTypes := application.NewEventTypesService(userRepo, eventTypeRepo, cfg.OnboardingIntroducedAt, logger)

	srv := web.New(web.Options{
		EventTypes:      eventTypes,
		Sessions:        session.NewManager(cfg.SessionSecret, sessionTTL),
		Translator:      tr,
		PublicURL:       cfg.PublicAppURL,
		UpgradeURL:      cfg.UpgradeURL,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Logger:          logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx, cfg.ListenAddr)
	})
	if cfg.DiscordEnabled() {
		handler := discord.NewHandler(eventTypes, tr, cfg.PublicAppURL, cfg.UpgradeURL, logger)
		bot, err := discord.NewBot(cfg.DiscordToken, handler, logger)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return bot.Start(gctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
