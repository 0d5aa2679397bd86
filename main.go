package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/galvamailru/chandra/config"
	"github.com/galvamailru/chandra/pkg/otel"
	"github.com/galvamailru/chandra/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otel.Setup(ctx, "chandra-ocr", version); err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.FromEnvironment()

	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "address", cfg.Address, "model", cfg.Model)

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
