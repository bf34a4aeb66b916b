package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// DocumentSourceContractTest is a reusable test suite that verifies if an adapter complies with ports.DocumentSource.
// setupData maps document IDs to the markup the source is expected to return.
func DocumentSourceContractTest(t *testing.T, source ports.DocumentSource, setupData map[string]string) {
	t.Helper()
	ctx := context.Background()

	// 1. Test Get (Success)
	t.Run("Get_Success", func(t *testing.T) {
		for id, expected := range setupData {
			doc, err := source.Get(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error getting document %s: %v", id, err)
			}
			if doc.ID != id {
				t.Errorf("id mismatch: got %q, want %q", doc.ID, id)
			}
			if doc.Markup != expected {
				t.Errorf("markup mismatch for %s. got %q, want %q", id, doc.Markup, expected)
			}
		}
	})

	// 2. Test Get (NotFound)
	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := source.Get(ctx, "non-existent-document")
		if err == nil {
			t.Fatal("expected error for non-existent document, got nil")
		}
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			t.Errorf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	// 3. Test List
	t.Run("List", func(t *testing.T) {
		ids, err := source.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing documents: %v", err)
		}

		if len(ids) != len(setupData) {
			t.Errorf("expected %d documents, got %d", len(setupData), len(ids))
		}

		for i := 1; i < len(ids); i++ {
			if ids[i-1] > ids[i] {
				t.Errorf("ids not sorted: %v", ids)
				break
			}
		}

		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}
		for id := range setupData {
			if !lookup[id] {
				t.Errorf("document %s missing from list", id)
			}
		}
	})
}
