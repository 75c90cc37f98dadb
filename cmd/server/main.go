package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/edgarparse/internal/api"
	"github.com/dgallion1/edgarparse/internal/config"
	"github.com/dgallion1/edgarparse/internal/metrics"
	"github.com/dgallion1/edgarparse/internal/pipeline"
)

func main() {
	cfg := config.Load()
	opts, level, err := cfg.Resolve()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize pipeline.
	rec := metrics.NewRecorder(metrics.NewParseStats(time.Hour))
	orch := pipeline.NewOrchestrator(cfg, rec, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, opts, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.ParseTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		orch.Stop()
	}()

	log.Info("starting edgarparse",
		"port", cfg.Port,
		"workers", cfg.WorkerCount,
		"ownership_policy", opts.OwnershipPolicy,
		"thirteenf_policy", opts.ThirteenFPolicy,
		"auth", cfg.APIKey != "",
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
