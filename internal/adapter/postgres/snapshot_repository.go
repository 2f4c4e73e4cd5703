package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campaign-ledger/internal/core/port"
)

// DB is the subset of *pgxpool.Pool used by SnapshotRepository.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SnapshotRepository implements port.SnapshotStore using the
// campaign_snapshots table. One row is kept per key.
type SnapshotRepository struct {
	db DB
}

// NewSnapshotRepository returns a new repository instance.
func NewSnapshotRepository(db DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Write upserts the payload under key.
func (r *SnapshotRepository) Write(ctx context.Context, key string, payload []byte) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO campaign_snapshots (key, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE
        SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`, key, payload)
	return err
}

// Read returns the payload stored under key.
func (r *SnapshotRepository) Read(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM campaign_snapshots WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}
