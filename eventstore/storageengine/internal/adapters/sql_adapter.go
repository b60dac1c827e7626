package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter implements KVAdapter for a database/sql connection.
type SQLAdapter struct {
	kv sqlKV
}

// NewSQLAdapter creates a new database/sql adapter.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{kv: sqlKV{db: db}}
}

// Get reads the value stored under key.
func (a *SQLAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return a.kv.get(ctx, key)
}

// Put stores value under key, overwriting any prior value.
func (a *SQLAdapter) Put(ctx context.Context, key string, value []byte) error {
	return a.kv.put(ctx, key, value)
}
