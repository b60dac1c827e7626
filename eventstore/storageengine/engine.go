package storageengine

import (
	"context"
	"database/sql"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/jmoiron/sqlx"
	"go.etcd.io/bbolt"

	"github.com/eventdeck/campus-events-store-go/eventstore"
	"github.com/eventdeck/campus-events-store-go/eventstore/storageengine/internal/adapters"
)

const (
	defaultStorageKey = "events"

	logMsgCollectionSaved      = "event collection saved"
	logMsgCollectionLoaded     = "event collection loaded"
	logMsgSlotEmpty            = "storage slot is empty"
	logMsgStorageReadFailed    = "reading the storage slot failed"
	logMsgStorageWriteFailed   = "writing the storage slot failed"
	logMsgCollectionDecodeFail = "decoding the stored collection failed"
	logAttrError               = "error"
	logAttrStorageKey          = "storage_key"
	logAttrEventCount          = "event_count"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Engine persists the full event collection as one JSON array under a single
// storage key. There is exactly one canonical slot; earlier designs kept a
// second legacy key alongside it, which this engine deliberately collapses.
type Engine struct {
	kv         adapters.KVAdapter
	storageKey string
	seedSource string
	logger     eventstore.Logger
}

// Option defines a functional option for configuring an Engine.
type Option func(*Engine) error

// WithStorageKey sets the storage key the collection is kept under.
func WithStorageKey(storageKey string) Option {
	return func(e *Engine) error {
		if storageKey == "" {
			return eventstore.ErrEmptyStorageKey
		}

		e.storageKey = storageKey

		return nil
	}
}

// WithSeedSource sets the path of the seed JSON document used by SeedIfEmpty.
// Without a seed source, SeedIfEmpty leaves an empty slot alone.
func WithSeedSource(path string) Option {
	return func(e *Engine) error {
		e.seedSource = path
		return nil
	}
}

// WithLogger sets the logger for the Engine.
func WithLogger(logger eventstore.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// NewEngineFromBolt creates a new Engine using a BoltDB database with
// optional configuration.
func NewEngineFromBolt(db *bbolt.DB, options ...Option) (Engine, error) {
	if db == nil {
		return Engine{}, eventstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewBoltAdapter(db), options...)
}

// NewEngineFromSQLDB creates a new Engine using a sql.DB (SQLite) with
// optional configuration.
func NewEngineFromSQLDB(db *sql.DB, options ...Option) (Engine, error) {
	if db == nil {
		return Engine{}, eventstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLAdapter(db), options...)
}

// NewEngineFromSQLX creates a new Engine using a sqlx.DB (SQLite) with
// optional configuration.
func NewEngineFromSQLX(db *sqlx.DB, options ...Option) (Engine, error) {
	if db == nil {
		return Engine{}, eventstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLXAdapter(db), options...)
}

func newEngine(kv adapters.KVAdapter, options ...Option) (Engine, error) {
	e := Engine{
		kv:         kv,
		storageKey: defaultStorageKey,
	}

	for _, option := range options {
		if err := option(&e); err != nil {
			return Engine{}, err
		}
	}

	return e, nil
}

// Load returns the persisted collection, or found == false when nothing has
// been persisted under the storage key yet.
func (e Engine) Load(ctx context.Context) (eventstore.EventRecords, bool, error) {
	raw, found, err := e.kv.Get(ctx, e.storageKey)
	if err != nil {
		e.logError(logMsgStorageReadFailed, logAttrError, err.Error(), logAttrStorageKey, e.storageKey)
		return nil, false, errors.Join(eventstore.ErrLoadingCollectionFailed, err)
	}

	if !found {
		e.logDebug(logMsgSlotEmpty, logAttrStorageKey, e.storageKey)
		return nil, false, nil
	}

	var records eventstore.EventRecords
	if err := json.Unmarshal(raw, &records); err != nil {
		e.logError(logMsgCollectionDecodeFail, logAttrError, err.Error(), logAttrStorageKey, e.storageKey)
		return nil, false, errors.Join(eventstore.ErrDecodingCollectionFailed, err)
	}

	e.logDebug(logMsgCollectionLoaded, logAttrEventCount, len(records))

	return records, true, nil
}

// Save persists the full collection, overwriting any prior value in the slot.
func (e Engine) Save(ctx context.Context, records eventstore.EventRecords) error {
	if records == nil {
		records = make(eventstore.EventRecords, 0)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return errors.Join(eventstore.ErrEncodingCollectionFailed, err)
	}

	if err := e.kv.Put(ctx, e.storageKey, raw); err != nil {
		e.logError(logMsgStorageWriteFailed, logAttrError, err.Error(), logAttrStorageKey, e.storageKey)
		return errors.Join(eventstore.ErrSavingCollectionFailed, err)
	}

	e.logDebug(logMsgCollectionSaved, logAttrEventCount, len(records))

	return nil
}

func (e Engine) logDebug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}

func (e Engine) logInfo(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Info(msg, args...)
	}
}

func (e Engine) logWarn(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}

func (e Engine) logError(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Error(msg, args...)
	}
}
