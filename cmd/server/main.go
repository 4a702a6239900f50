// Package main implements the entry point for the habla-api server,
// which tracks a learner's Spanish vocabulary and grammar progress,
// schedules spaced-repetition reviews, analyzes text comprehension,
// and reports a unified CEFR score.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hablaconmigo/habla-api/internal/config"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
)

func main() {
	// A missing .env file is fine; production carries real environment
	// variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to set up database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := runMigrations(db, appLogger); err != nil {
		appLogger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		appLogger.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
