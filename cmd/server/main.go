package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/config"
	"resume-builder/internal/wiring"
	"resume-builder/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	processor := wiring.NewProcessor(cfg)

	h := httpadapter.NewHandler(processor, cfg.MaxUploadBytes)
	app := httpadapter.NewApp(h, httpadapter.AppConfig{
		AllowOrigins:   cfg.CORSAllowOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.Port, "env", cfg.Env, "enrichment_url", cfg.EnrichmentURL)
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		slog.Error("server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
