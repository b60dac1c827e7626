package adapters

import "context"

// KVAdapter defines the single-slot storage operations needed by the engine.
// Get reports absence of the key separately from failure.
type KVAdapter interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
