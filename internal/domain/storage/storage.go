// Package storage defines the object-store port. The service keeps blob
// handling behind this interface so the disk adapter can be swapped for a
// cloud bucket without touching the upload usecase.
package storage

import "context"

type ObjectStore interface {
	// Upload stores content at path, overwriting nothing: callers are
	// responsible for unique paths.
	Upload(ctx context.Context, path string, content []byte) error
	// PublicURL resolves a stored path to a retrievable URL.
	PublicURL(path string) string
	Delete(ctx context.Context, path string) error
}
