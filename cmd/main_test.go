package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "campaign-ledger/internal/adapter/http"
	"campaign-ledger/internal/adapter/memory"
	redisadapter "campaign-ledger/internal/adapter/redis"
	"campaign-ledger/internal/adapter/usecase"
	"campaign-ledger/internal/config"
	"campaign-ledger/internal/config/configs"
	"campaign-ledger/internal/core/domain"
)

func TestPrepareLedgerSeedsEmptyLedger(t *testing.T) {
	store := memory.NewSnapshotStore()
	ledger := usecase.NewCampaignLedger(store, "campaings", nil)

	err := prepareLedger(context.Background(), configs.Ledger{Key: "campaings", Seed: true, Rehydrate: true}, ledger, store, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Len(t, ledger.List(), 3)
}

func TestPrepareLedgerRehydrateSkipsSeed(t *testing.T) {
	store := memory.NewSnapshotStore()
	first := usecase.NewCampaignLedger(store, "campaings", nil)
	_, err := first.Add(context.Background(), domain.Candidate{Name: "Kept", StartDate: "2024-01-01", EndDate: "2024-01-02"})
	require.NoError(t, err)

	second := usecase.NewCampaignLedger(store, "campaings", nil)
	err = prepareLedger(context.Background(), configs.Ledger{Key: "campaings", Seed: true, Rehydrate: true}, second, store, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	rows := second.List()
	require.Len(t, rows, 1)
	assert.Equal(t, "Kept", rows[0].Name)
	assert.Equal(t, 1, store.Writes(), "rehydration does not write back")
}

func TestOpenSnapshotStoreDefaultsToMemory(t *testing.T) {
	store, closeFn, err := openSnapshotStore(context.Background(), configForSink(configs.SinkMemory), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer closeFn()
	_, ok := store.(*memory.SnapshotStore)
	assert.True(t, ok)
}

func TestOpenSnapshotStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := configForSink(configs.SinkRedis)
	cfg.Redis.Addr = mr.Addr()

	store, closeFn, err := openSnapshotStore(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer closeFn()
	_, ok := store.(*redisadapter.SnapshotStore)
	require.True(t, ok)

	ledger := usecase.NewCampaignLedger(store, "campaings", nil)
	_, err = ledger.Add(context.Background(), domain.Candidate{Name: "A", StartDate: "2024-01-01", EndDate: "2024-01-02"})
	require.NoError(t, err)
	assert.True(t, mr.Exists("campaings"))
}

func TestOpenSnapshotStoreRejectsUnknownSink(t *testing.T) {
	_, _, err := openSnapshotStore(context.Background(), configForSink("localstorage"), slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func configForSink(kind string) config.Config {
	var cfg config.Config
	cfg.Ledger.Sink = kind
	return cfg
}

// TestServeReportsListenFailure ensures a port that is already taken ends
// serve with an error instead of a clean stop.
func TestServeReportsListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := &http.Server{Addr: ln.Addr().String(), Handler: http.NotFoundHandler()}
	err = serve(context.Background(), srv, slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.ErrorContains(t, err, "listen on")
}

func TestServeStopsCleanlyOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	logger := slog.New(slog.DiscardHandler)
	ledger := usecase.NewCampaignLedger(nil, "", logger)
	srv := &http.Server{Addr: addr, Handler: httpadapter.NewHandler(ledger, logger, []string{"*"}).Router()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, logger) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
