package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/presentation/dump"
	"github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.CacheIndex = (*redis.Cache)(nil)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisCache_Contract(t *testing.T) {
	_, client := setup(t)
	ports.RunDocumentCacheContract(t, redis.NewFromClient(client))
}

func TestRedisCache_TTLExpiration(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "doc", arbor.Parse("<p>x</p>")))

	keys, err := cache.Keys(ctx)
	require.NoError(t, err)
	assert.Contains(t, keys, "doc")

	mr.FastForward(2 * time.Second)

	_, err = cache.Get(ctx, "doc")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client, redis.WithPrefix("test:"))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "abc", arbor.Parse("hi")))

	assert.True(t, mr.Exists("test:abc"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"abc"))
	members, err := mr.ZMembers("test:index")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, members)
}

func TestRedisCache_ServesParser(t *testing.T) {
	_, client := setup(t)
	cache := redis.NewFromClient(client)
	ctx := context.Background()

	var hits []bool
	p := arbor.New(
		arbor.WithCache(cache),
		arbor.WithLifecycleHooks(domain.LifecycleHooks{
			OnParseDone: func(_ context.Context, e *domain.ParseEvent) { hits = append(hits, e.CacheHit) },
		}),
	)

	markup := `<ul class='list'><li>one</li><li>two<br></li></ul>`
	first, err := p.Parse(ctx, markup)
	require.NoError(t, err)
	second, err := p.Parse(ctx, markup)
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true}, hits)
	assert.Equal(t, dump.String(first), dump.String(second))

	keys, err := cache.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{p.CacheKey(markup)}, keys)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client)
	require.NoError(t, mr.Set(redis.DefaultPrefix+"bad", "{not json"))

	_, err := cache.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDocumentNotFound)
}
