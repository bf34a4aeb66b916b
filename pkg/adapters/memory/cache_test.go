package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/dom"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.CacheIndex = (*memory.Cache)(nil)

func TestMemoryCache_Contract(t *testing.T) {
	cache := memory.NewCache()
	ports.RunDocumentCacheContract(t, cache)
}

func TestMemoryCache_ContractWithTTL(t *testing.T) {
	cache := memory.NewCache(memory.WithTTL(time.Minute))
	ports.RunDocumentCacheContract(t, cache)
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache(memory.WithTTL(200 * time.Millisecond))

	require.NoError(t, cache.Put(ctx, "short", dom.NewTree()))
	_, err := cache.Get(ctx, "short")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := cache.Get(ctx, "short")
		return err != nil
	}, 2*time.Second, 10*time.Millisecond)

	_, err = cache.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	keys, err := cache.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemoryCache_NoTTLKeepsEntries(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache()

	require.NoError(t, cache.Put(ctx, "b", dom.NewTree()))
	require.NoError(t, cache.Put(ctx, "a", dom.NewTree()))

	keys, err := cache.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}
