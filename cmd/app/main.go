package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ghumash/WeatherApp/internal/app"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	// Create application with dependency injection
	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	slog.Info("Configuration loaded successfully", "config", application.Config())

	// Start returns once the signal has been handled and shutdown has completed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting weather lookup service...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}
