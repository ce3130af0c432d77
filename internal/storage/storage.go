// Package storage provides key/value backends for the persisted assistant
// state: a JSON file per key, a SQLite table, and an in-memory map.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record exists for a key.
var ErrNotFound = errors.New("not found")

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// KV is the interface every backend implements.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the backend called name rooted at dataDir.
func Open(name, dataDir string) (KV, error) {
	switch name {
	case BackendFile, "":
		return NewFileStore(dataDir), nil
	case BackendSQLite:
		return OpenSQLite(dataDir)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", name)
	}
}
