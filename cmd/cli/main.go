package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmuwanga/ohns-backoffice/internal/buildinfo"
	"github.com/dmuwanga/ohns-backoffice/internal/client/cli"
	"github.com/dmuwanga/ohns-backoffice/internal/client/config"
	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewTerminalLogger(os.Stderr, logLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
