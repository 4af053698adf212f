package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/valyala/fasthttp"

	"quote-engine/internal/config"
	"quote-engine/internal/engine"
	"quote-engine/internal/handler"
	"quote-engine/internal/insurer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	insurers, err := insurer.LoadFile(cfg.InsurerAliasesFile)
	if err != nil {
		logger.Error("failed to load insurer aliases", "path", cfg.InsurerAliasesFile, "error", err)
		os.Exit(1)
	}

	opts := engine.Options{
		ValidateVehicle: cfg.ValidateVehicle,
		Insurers:        insurers,
	}
	h := handler.New(opts, cfg.BatchWorkers, cfg.MaxBatchSize, logger).
		WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	srv := &fasthttp.Server{
		Handler: h.Serve,
		Name:    "quote-engine",
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("shutting down", "signal", sig.String())
		if err := srv.Shutdown(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("quote engine starting",
		"port", cfg.Port,
		"validate_vehicle", cfg.ValidateVehicle,
		"insurer_aliases", insurers.Len(),
		"batch_workers", cfg.BatchWorkers,
		"rate_limit_rps", cfg.RateLimitRPS,
	)
	if err := srv.ListenAndServe(":" + cfg.Port); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
