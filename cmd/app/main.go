package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rate_relay/internal/app"
	"rate_relay/internal/infra"
	"rate_relay/internal/infra/privat"
	"rate_relay/internal/render"
	"rate_relay/internal/server"
	"rate_relay/internal/service"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(*configPath); err != nil {
		slog.Error("bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := bootstrap.Config

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rateClient := privat.NewClient(
		cfg.Bank.URL,
		infra.DefaultUserAgent,
		time.Duration(cfg.Bank.TimeoutSec)*time.Second,
	)
	archive := service.NewArchiveService(rateClient, cfg.Bank.FetchConcurrency)

	hub := server.NewHub()
	relay := server.NewRelay(
		hub,
		archive,
		bootstrap.Storage,
		render.HTMLTable,
		cfg.Bank.MaxArchiveDays,
		cfg.Bank.BaseCurrencies,
		cfg.Bank.AllCurrencies,
	)

	srv := server.NewServer(cfg, hub, relay, bootstrap.Storage)
	if err := srv.Run(ctx); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("shut down gracefully")
}
