package adapters

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLXAdapter implements KVAdapter for a sqlx.DB connection.
type SQLXAdapter struct {
	kv sqlKV
}

// NewSQLXAdapter creates a new sqlx adapter.
func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{kv: sqlKV{db: db}}
}

// Get reads the value stored under key.
func (a *SQLXAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return a.kv.get(ctx, key)
}

// Put stores value under key, overwriting any prior value.
func (a *SQLXAdapter) Put(ctx context.Context, key string, value []byte) error {
	return a.kv.put(ctx, key, value)
}
