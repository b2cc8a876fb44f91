// Package store publishes serialized interval indexes to an object store
// and fetches them back, addressed by dataset identity. Payloads are
// immutable once written; distribution to workers is fetch-only.
package store

import "context"

type ObjectReader interface {
	// Get returns the object bytes at path. The error wraps
	// ErrObjectNotFound when no object exists there.
	Get(ctx context.Context, path string) ([]byte, error)

	// List returns the paths under prefix, in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
}

type ObjectWriter interface {
	// Put writes the object bytes at path. With failIfExists the error wraps
	// ErrObjectExists rather than replacing an object already at path.
	Put(ctx context.Context, path string, data []byte, failIfExists bool) error
}

type ObjectReaderWriter interface {
	ObjectReader
	ObjectWriter
}
