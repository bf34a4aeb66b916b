// Package loam reads markup corpora from a directory of frontmatter documents.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/loam"
)

// WatchPattern selects the files that make up a corpus.
const WatchPattern = "**/*.md"

// Source adapts a Loam repository to ports.DocumentSource.
// A document's ID is its frontmatter id, or its path without extension.
type Source struct {
	Repo *loam.TypedRepository[DocMetadata]

	mu    sync.Mutex
	paths map[string]string // trimmed loam path -> document ID, from the last index
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[DocMetadata]) *Source {
	return &Source{
		Repo: repo,
	}
}

// Open initializes a read-only repository rooted at dir. The corpus is never
// written to, so ReadOnly avoids Loam's dev-mode sandbox.
func Open(dir string) (*Source, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve corpus dir: %w", err)
	}
	repo, err := loam.Init(abs,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", dir, err)
	}
	return New(loam.NewTypedRepository[DocMetadata](repo)), nil
}

// List returns the sorted IDs of every document.
func (s *Source) List(ctx context.Context) ([]string, error) {
	index, err := s.index(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Get loads one document. The body after the frontmatter is the markup.
func (s *Source) Get(ctx context.Context, id string) (ports.Document, error) {
	index, err := s.index(ctx)
	if err != nil {
		return ports.Document{}, err
	}
	path, ok := index[id]
	if !ok {
		return ports.Document{}, fmt.Errorf("document %q: %w", id, domain.ErrDocumentNotFound)
	}

	doc, err := s.Repo.Get(ctx, path)
	if err != nil {
		return ports.Document{}, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	title := doc.Data.Title
	if title == "" {
		title = id
	}
	return ports.Document{
		ID:     id,
		Title:  title,
		Markup: doc.Content,
	}, nil
}

// index maps normalized IDs to Loam document paths.
func (s *Source) index(ctx context.Context) (map[string]string, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	index := make(map[string]string, len(docs))
	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existing, ok := index[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existing, doc.ID)
		}
		index[id] = doc.ID
	}

	paths := make(map[string]string, len(index))
	for id, path := range index {
		paths[trimExtension(path)] = id
	}
	s.mu.Lock()
	s.paths = paths
	s.mu.Unlock()

	return index, nil
}

// resolve maps a changed loam path to the document ID that List and Get use.
// A deleted file is no longer listed, so the previous index is consulted first.
func (s *Source) resolve(ctx context.Context, path string) string {
	path = trimExtension(path)

	s.mu.Lock()
	previous := s.paths
	s.mu.Unlock()

	if _, err := s.index(ctx); err == nil {
		s.mu.Lock()
		id, ok := s.paths[path]
		s.mu.Unlock()
		if ok {
			return id
		}
	}
	if id, ok := previous[path]; ok {
		return id
	}
	return path
}

func trimExtension(id string) string {
	if ext := filepath.Ext(id); ext != "" {
		id = strings.TrimSuffix(id, ext)
	}
	return filepath.ToSlash(id)
}

// Watch implements ports.Watchable. It emits the document ID of each changed
// file, resolved the same way as List.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	if _, err := s.index(ctx); err != nil {
		return nil, err
	}
	events, err := s.Repo.Watch(ctx, WatchPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- s.resolve(ctx, evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
