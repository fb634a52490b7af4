// Package storage provides abstractions for persistent data storage.
package storage

import "context"

// Store is a durable key-value store of serialized collections.
// This abstraction allows swapping storage backends (SQLite, files, etc.)
// without changing the ledger or the service layer.
type Store interface {
	// LoadCollection returns the stored payload for name.
	// It returns nil and no error when the collection was never saved.
	LoadCollection(ctx context.Context, name string) ([]byte, error)

	// SaveCollection replaces the payload stored under name.
	SaveCollection(ctx context.Context, name string, data []byte) error

	// ListCollections returns the names of every stored collection.
	ListCollections(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
