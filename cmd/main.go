package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "campaign-ledger/internal/adapter/http"
	"campaign-ledger/internal/adapter/memory"
	"campaign-ledger/internal/adapter/postgres"
	redisadapter "campaign-ledger/internal/adapter/redis"
	"campaign-ledger/internal/adapter/usecase"
	"campaign-ledger/internal/config"
	"campaign-ledger/internal/config/configs"
	"campaign-ledger/internal/core/port"
	"campaign-ledger/internal/db"
)

// main is the entry point of the campaign ledger service. It loads
// configuration, connects the configured snapshot sink, builds the ledger
// (optionally rehydrating and seeding it), then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openSnapshotStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("snapshot sink error", slog.Any("error", err))
		return
	}
	defer closeStore()

	ledger := usecase.NewCampaignLedger(store, cfg.Ledger.Key, logger.With(slog.String("component", "ledger")))
	if err = prepareLedger(ctx, cfg.Ledger, ledger, store, logger); err != nil {
		logger.Error("ledger startup error", slog.Any("error", err))
		return
	}

	handler := httpadapter.NewHandler(ledger, logger, cfg.HTTP.AllowedOrigins)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err = serve(ctx, srv, logger); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	exitCode = 0
}

// serve runs srv until ctx is cancelled, then shuts it down within 5
// seconds. It returns nil only for a shutdown triggered by ctx; a server
// that fails to start or stops on its own yields an error.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return errors.New("server stopped unexpectedly")
		}
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

// openSnapshotStore builds the sink selected by cfg.Ledger.Sink. The
// returned close function releases its connections.
func openSnapshotStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.SnapshotStore, func(), error) {
	kind, err := cfg.Ledger.SinkKind()
	if err != nil {
		return nil, nil, err
	}

	switch kind {
	case configs.SinkRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("redis snapshot sink connected", slog.String("addr", cfg.Redis.Addr))
		return redisadapter.NewSnapshotStore(client, cfg.Redis.TTL), func() { _ = client.Close() }, nil

	case configs.SinkPostgres:
		// Optionally run migrations if configured.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		logger.Info("postgres snapshot sink connected")
		return postgres.NewSnapshotRepository(pool), pool.Close, nil

	default:
		return memory.NewSnapshotStore(), func() {}, nil
	}
}

// prepareLedger restores the previous snapshot when rehydration is enabled
// and seeds demo campaigns into a ledger that is still empty.
func prepareLedger(ctx context.Context, cfg configs.Ledger, ledger *usecase.CampaignLedger, src port.SnapshotSource, logger *slog.Logger) error {
	if cfg.Rehydrate {
		n, err := ledger.Restore(ctx, src)
		if err != nil {
			return err
		}
		logger.Info("ledger rehydrated", slog.Int("campaigns", n))
	}

	if !cfg.Seed || len(ledger.List()) > 0 {
		return nil
	}
	candidates, err := db.LoadFixtures(cfg.SeedFile)
	if err != nil {
		return err
	}
	if err = db.Seed(ctx, ledger, candidates); err != nil {
		return err
	}
	logger.Info("ledger seeded", slog.Int("campaigns", len(candidates)))
	return nil
}
