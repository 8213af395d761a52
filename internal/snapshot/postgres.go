package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Postgres stores snapshots in a single key/value table. Chosen when the
// deployment already runs a database and wants snapshots to survive host
// replacement.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres wraps an already-connected database handle.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// Init creates the snapshot table when missing.
func (p *Postgres) Init(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	data       BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`
	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init snapshot table: %w", err)
	}
	return nil
}

// Save upserts the payload under the key.
func (p *Postgres) Save(ctx context.Context, key string, data []byte) error {
	const query = `INSERT INTO snapshots (key, data, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key)
DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	if _, err := p.db.ExecContext(ctx, query, key, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", key, err)
	}
	return nil
}

// Load reads the payload for the key, ErrNotFound when no row exists.
func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT data FROM snapshots WHERE key = $1`
	var data []byte
	if err := p.db.GetContext(ctx, &data, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select snapshot %s: %w", key, err)
	}
	return data, nil
}
