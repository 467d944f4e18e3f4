// Package storage provides the client's durable local state: a small
// key-value metadata store backed by sqlite. It holds the bearer token, the
// in-progress registration, and the remembered login identifier.
package storage

import "context"

// Store is the durable key-value surface used by the session manager.
// A missing key yields (nil, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetAll writes several keys atomically.
	SetAll(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
