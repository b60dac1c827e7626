// Package adapters contains the storage backend adapters used by the
// storageengine package. Each adapter reduces its backend to the same
// single-key Get/Put surface, so the engine stays agnostic of where the
// bytes actually live.
package adapters
