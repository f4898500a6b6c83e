// Package main is the entry point for Crawler.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/crawler/internal/config"
	"github.com/samdwyer/crawler/internal/game"
	"github.com/samdwyer/crawler/internal/gamedata"
	"github.com/samdwyer/crawler/internal/logger"
	"github.com/samdwyer/crawler/internal/telemetry"
	"github.com/samdwyer/crawler/internal/ui"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	configPath := flag.String("config", envOr("CRAWLER_CONFIG", "crawler.yaml"), "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Debug:  cfg.Log.Debug,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ui.Version = version
	telemetry.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Config{
			Endpoint: cfg.Telemetry.Endpoint,
			Headers:  cfg.Telemetry.ExportHeaders(),
		})
		if err != nil {
			// Continue without telemetry - game still works
			zapLogger.Warn("telemetry setup failed, running without traces", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					zapLogger.Error("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	catalog, err := gamedata.LoadItemRegistry()
	if err != nil {
		return fmt.Errorf("load item catalog: %w", err)
	}

	session, err := game.NewSession(cfg.GameConfig(), catalog, zapLogger)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	terminal, err := ui.NewTerminal()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer terminal.Close()

	zapLogger.Info("crawler started",
		zap.String("version", version),
		zap.Int("catalog_items", catalog.Count()),
	)
	err = game.NewLoop(terminal, session, zapLogger).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Error("crawler exited with error", zap.Error(err))
		return err
	}
	zapLogger.Info("crawler stopped", zap.Stringer("mode", session.Mode()))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
