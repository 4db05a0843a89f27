// Package storage abstracts the remote bucket that holds backup snapshots.
package storage

import (
	"context"
	"time"
)

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// ObjectStore is the interface every snapshot bucket backend implements.
// Each call is atomic on its own; there are no multi-call transactions.
type ObjectStore interface {
	// List returns objects whose name starts with prefix, sorted by name
	// descending, at most limit entries. limit <= 0 means no limit.
	List(ctx context.Context, prefix string, limit int) ([]ObjectInfo, error)

	// Upload stores an object. Without upsert the call fails if an object
	// with the same name already exists; with upsert it is replaced
	// (last write wins).
	Upload(ctx context.Context, name string, data []byte, contentType string, upsert bool) error

	// Download returns the full content of an object.
	Download(ctx context.Context, name string) ([]byte, error)

	// Delete removes the named objects in one call.
	Delete(ctx context.Context, names ...string) error
}
