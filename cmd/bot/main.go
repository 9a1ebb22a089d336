package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	coreconfig "github.com/Nik4Low/KGTUbot/core/config"
	"github.com/Nik4Low/KGTUbot/core/logger"
	"github.com/Nik4Low/KGTUbot/internal/bot"
)

const defaultConfigPath = "config.yaml"

func main() {
	if err := run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := coreconfig.Load(cfgPath)
	if err != nil {
		return err
	}

	if err := logger.InitLogger(cfg); err != nil {
		return err
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startedAt := time.Now()
	app := logger.L.With("component", "app")
	app.Info("app starting",
		slog.String("event", "start"),
	)

	err = bot.Run(ctx, cfg)

	app.Info("shutting down...",
		slog.String("event", "shutdown"),
		slog.Duration("uptime", logger.Took(startedAt)),
	)

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
