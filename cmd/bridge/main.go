package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpapi "smartthings-bridge/internal/adapters/input/http"
	"smartthings-bridge/internal/adapters/output/persistence"
	"smartthings-bridge/internal/adapters/output/smartthings"
	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/domain/service"
	"smartthings-bridge/internal/observability"
	"smartthings-bridge/internal/ports"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	if env := os.Getenv("CONFIG_PATH"); env != "" {
		*configPath = env
	}

	var configRepo ports.ConfigRepository = persistence.NewYAMLConfigRepository(*configPath)
	cfg, err := configRepo.Get(context.Background())
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	client := smartthings.NewClient(cfg.APIURL, cfg.Token)
	store := persistence.NewAccessoryStore(cfg.AccessoryStore)

	platform := service.NewPlatform(client, store, cfg, logger, metrics)

	restored, err := store.Load(ctx)
	if err != nil {
		logger.Error("failed to load accessory store", "path", cfg.AccessoryStore, "error", err)
	}
	for _, b := range restored {
		platform.ConfigureAccessory(b)
	}

	srv := httpapi.NewServer(platform, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), logger)
	httpSrv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Listen)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	platform.DidFinishLaunching(ctx)

	<-ctx.Done()
	logger.Info("shutting down")

	platform.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func setupLogger(cfg model.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
