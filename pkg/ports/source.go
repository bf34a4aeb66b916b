package ports

import "context"

// Document is one markup document of a corpus.
type Document struct {
	ID     string
	Title  string
	Markup string
}

// DocumentSource provides markup documents to batch tools.
type DocumentSource interface {
	// List returns the IDs of all documents, sorted.
	List(ctx context.Context) ([]string, error)

	// Get returns a single document.
	// Returns domain.ErrDocumentNotFound if id is unknown.
	Get(ctx context.Context, id string) (Document, error)
}

// Watchable defines an interface for sources that can notify about backend changes.
type Watchable interface {
	// Watch returns a channel that receives the ID of each changed document.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
