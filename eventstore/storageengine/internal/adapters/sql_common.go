package adapters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect import
)

const (
	storageTableName = "storage"
	colKey           = "key"
	colValue         = "value"
	dialectSQLite    = "sqlite3"

	createStorageTableSQL = `CREATE TABLE IF NOT EXISTS storage ("key" TEXT PRIMARY KEY, "value" BLOB NOT NULL)`
)

// sqlExecutor is the subset of database/sql that both sql.DB and sqlx.DB
// satisfy, which lets the two SQL adapters share one implementation.
type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqlKV implements the key-value slot on top of a storage table with one row
// per key. The schema is ensured before every operation, so a fresh database
// file needs no setup step.
type sqlKV struct {
	db sqlExecutor
}

func (s *sqlKV) get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, false, err
	}

	query, args, buildErr := buildSelectQuery(key)
	if buildErr != nil {
		return nil, false, buildErr
	}

	var value []byte
	scanErr := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, false, nil
	}
	if scanErr != nil {
		return nil, false, scanErr
	}

	return value, true, nil
}

func (s *sqlKV) put(ctx context.Context, key string, value []byte) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}

	query, args, buildErr := buildUpsertQuery(key, value)
	if buildErr != nil {
		return buildErr
	}

	_, execErr := s.db.ExecContext(ctx, query, args...)

	return execErr
}

func (s *sqlKV) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createStorageTableSQL)

	return err
}

func buildSelectQuery(key string) (string, []any, error) {
	return goqu.Dialect(dialectSQLite).
		From(storageTableName).
		Select(colValue).
		Where(goqu.Ex{colKey: key}).
		Prepared(true).
		ToSQL()
}

func buildUpsertQuery(key string, value []byte) (string, []any, error) {
	return goqu.Dialect(dialectSQLite).
		Insert(storageTableName).
		Cols(colKey, colValue).
		Vals(goqu.Vals{key, value}).
		OnConflict(goqu.DoUpdate(colKey, goqu.Record{colValue: value})).
		Prepared(true).
		ToSQL()
}
