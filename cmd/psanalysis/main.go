package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/JonMunkholm/psanalysis/internal/config"
	"github.com/JonMunkholm/psanalysis/internal/logging"
	"github.com/JonMunkholm/psanalysis/internal/pipeline"
)

func main() {
	// Load .env file if it exists; real environment variables take precedence
	loaded, err := config.LoadDotEnv()
	if err != nil {
		slog.Error("failed to read .env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "dotenv", loaded, "config", cfg.String())

	ctx := logging.WithRunID(context.Background(), logging.NewRunID())

	if _, err := pipeline.Run(ctx, cfg, os.Stdout); err != nil {
		logging.FromContext(ctx).Error("analysis failed", "error", err)
		os.Exit(1)
	}
}
