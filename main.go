package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"adms-ingestor/internal/api"
	"adms-ingestor/internal/config"
	"adms-ingestor/internal/db"
	"adms-ingestor/internal/ingest"
	"adms-ingestor/internal/kafka"
	"adms-ingestor/internal/processors/relay"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...", "app_env", cfg.AppEnv, "addr", cfg.HTTPAddr)
	if cfg.AppEnv == config.EnvDev && cfg.ZKToken == config.DevToken {
		slog.WarnContext(ctx, "Using the development token for /zk/{token}")
	}

	database, err := db.Init(ctx, db.Config{
		ConnString:     cfg.ConnString(),
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Database init failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	gateway := ingest.New(ingest.Config{Repository: database})

	if cfg.DiscoveryActive(time.Now()) {
		slog.WarnContext(ctx, "Discovery mode active", "until", cfg.DiscoveryUntil)
	}
	server := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: api.NewRouter(api.New(api.Config{
			Ingestor:       gateway,
			Token:          cfg.ZKToken,
			Handshake:      cfg.Handshake,
			DiscoveryUntil: cfg.DiscoveryUntil,
		})),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg := sync.WaitGroup{}

	var wRelay *relay.Relay
	if cfg.RelayEnabled() {
		wRelay = relay.New(relay.Config{
			Name:       "kafka-relay",
			Repository: database,
			Writer:     kafka.NewWriter(cfg.Brokers(), cfg.KafkaTopic),
			BatchSize:  cfg.RelayBatchSize,
			Interval:   cfg.RelayInterval,
		})
		wg.Go(func() {
			wRelay.Run(ctx)
		})
	} else {
		slog.InfoContext(ctx, "Kafka relay disabled, no brokers configured")
	}

	wg.Go(func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	})

	go func() {
		select {
		case <-sigs:
		case <-ctx.Done():
		}
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown failed", "error", err)
		}
	}()

	wg.Wait()

	if wRelay != nil {
		wRelay.Close(context.Background())
	}
	slog.Info("Service stopped")
}
