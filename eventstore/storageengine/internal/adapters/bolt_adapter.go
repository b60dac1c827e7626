package adapters

import (
	"context"
	"slices"

	"go.etcd.io/bbolt"
)

const bucketName = "storage"

// BoltAdapter implements KVAdapter for a BoltDB database.
// All slots live in one bucket, created lazily on first Put.
type BoltAdapter struct {
	db *bbolt.DB
}

// NewBoltAdapter creates a new BoltDB adapter.
func NewBoltAdapter(db *bbolt.DB) *BoltAdapter {
	return &BoltAdapter{db: db}
}

// Get reads the value stored under key. A missing bucket or key is absence,
// not an error.
func (b *BoltAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var value []byte
	var found bool

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}

		raw := bucket.Get([]byte(key))
		if raw == nil {
			return nil
		}

		// The slice is only valid inside the transaction.
		value = slices.Clone(raw)
		found = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return value, found, nil
}

// Put stores value under key, overwriting any prior value.
func (b *BoltAdapter) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}

		return bucket.Put([]byte(key), value)
	})
}
