package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/dom"
)

// DocumentCache stores parsed trees so identical input is not tokenized twice.
type DocumentCache interface {
	// Get returns the tree stored under key.
	// Returns domain.ErrDocumentNotFound if there is none.
	Get(ctx context.Context, key string) (*dom.Tree, error)

	// Put stores tree under key, replacing any previous entry.
	Put(ctx context.Context, key string, tree *dom.Tree) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// CacheIndex is implemented by caches that can enumerate their live keys.
type CacheIndex interface {
	Keys(ctx context.Context) ([]string, error)
}
