package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Source implements ports.DocumentSource and ports.Watchable in memory.
// It backs tests and markup passed on the command line.
type Source struct {
	mu       sync.RWMutex
	docs     map[string]ports.Document
	watchers map[chan string]struct{}
}

// NewSource creates a source holding docs.
func NewSource(docs ...ports.Document) *Source {
	s := &Source{
		docs:     make(map[string]ports.Document, len(docs)),
		watchers: make(map[chan string]struct{}),
	}
	for _, d := range docs {
		s.docs[d.ID] = d
	}
	return s
}

// Put adds or replaces a document and notifies watchers.
func (s *Source) Put(doc ports.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[doc.ID] = doc
	for ch := range s.watchers {
		select {
		case ch <- doc.ID:
		default:
			// Slow watcher: drop, it will re-read on its next event.
		}
	}
}

// List returns the sorted document IDs.
func (s *Source) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Get returns a document by ID.
func (s *Source) Get(ctx context.Context, id string) (ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return ports.Document{}, fmt.Errorf("document %q: %w", id, domain.ErrDocumentNotFound)
	}
	return doc, nil
}

// Watch emits the ID of every document passed to Put until ctx is done.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 16)

	s.mu.Lock()
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, ch)
		close(ch)
		s.mu.Unlock()
	}()

	return ch, nil
}
