// Package snapshot provides the durable key-value layer the store writes
// collection snapshots to. Each collection lives under one namespaced key
// holding a JSON-serialized array.
package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound reports that no snapshot exists under the requested key.
var ErrNotFound = errors.New("snapshot not found")

// Store persists opaque snapshot payloads under namespaced keys.
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// Noop discards writes and never finds snapshots. Used when persistence is
// disabled; the in-memory state stays authoritative either way.
type Noop struct{}

// Save discards the payload.
func (Noop) Save(ctx context.Context, key string, data []byte) error { return nil }

// Load always reports a missing snapshot.
func (Noop) Load(ctx context.Context, key string) ([]byte, error) { return nil, ErrNotFound }
