package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weatherplaylist.app/internal/adapters/infrastructure"
	"weatherplaylist.app/internal/app"
	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))
	log.SetDefault()

	appLogger := infrastructure.NewSlogLoggerAdapter(log)
	app.NewConfigDisplayer(appLogger).LogConfig(cfg)

	application, err := app.NewApplication(cfg, app.DependencyOptions{
		Logger: appLogger,
	})
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"cache", cfg.Cache.Type.String(),
		"units", cfg.Weather.Units,
		"locale", cfg.Weather.Locale)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting weather playlist API...")
		errCh <- application.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Failed to start application", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
		os.Exit(1)
	}
}
