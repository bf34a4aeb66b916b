package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/arbor/pkg/dom"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentCacheContract runs a suite of tests to verify that a DocumentCache
// implementation adheres to the defined interface contract.
func RunDocumentCacheContract(t *testing.T, cache DocumentCache) {
	ctx := context.Background()
	key := "contract-test-doc-" + time.Now().Format("20060102150405")

	sample := func() *dom.Tree {
		tree := dom.NewTree()
		p, _ := tree.Append(tree.Root(), &dom.Element{
			TagName:    "p",
			Attributes: []dom.Attribute{{Name: "id", Value: "a"}, {Name: "id", Value: "b"}},
		})
		_, _ = tree.Append(p, dom.Text{Data: "Hello "})
		_, _ = tree.Append(p, &dom.Element{TagName: "br"})
		return tree
	}

	t.Run("Put and Get", func(t *testing.T) {
		// 1. Store a tree
		tree := sample()
		require.NoError(t, cache.Put(ctx, key, tree), "Put should not return error")

		// 2. Read it back
		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, tree.Len(), loaded.Len())

		// 3. Structure and attribute order survive the round trip
		p := loaded.Node(1).(*dom.Element)
		assert.Equal(t, "p", p.TagName)
		assert.Equal(t, []dom.Attribute{{Name: "id", Value: "a"}, {Name: "id", Value: "b"}}, p.Attributes)
		assert.Equal(t, dom.Text{Data: "Hello "}, loaded.Node(2))
	})

	t.Run("Get Isolation", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, sample()))

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		_, err = loaded.Append(loaded.Root(), dom.Text{Data: "mutated"})
		require.NoError(t, err)

		again, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, sample().Len(), again.Len(), "callers must not be able to mutate cached trees")
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, sample()))
		require.NoError(t, cache.Delete(ctx, key))

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

		// Deleting twice is fine
		assert.NoError(t, cache.Delete(ctx, key))
	})

	index, ok := cache.(CacheIndex)
	if !ok {
		return
	}
	t.Run("Keys", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, sample()))
		keys, err := index.Keys(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, key)

		require.NoError(t, cache.Delete(ctx, key))
		keys, err = index.Keys(ctx)
		require.NoError(t, err)
		assert.NotContains(t, keys, key)
	})
}
