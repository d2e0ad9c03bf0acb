package cache_test

import (
	"context"
	"testing"
	"time"

	"lifecare/infras/otel/mocks"
	"lifecare/shared/cache"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), mr
}

func TestRedisCache_SaveAndGetString(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "cms:doctors:doctors", `{"data":[]}`, 60))

	var got string
	require.NoError(t, c.Get(ctx, "cms:doctors:doctors", &got))
	assert.Equal(t, `{"data":[]}`, got)

	mr.FastForward(61 * time.Second)

	err := c.Get(ctx, "cms:doctors:doctors", &got)
	require.Error(t, err)
	assert.True(t, cache.IsMiss(err))
}

func TestRedisCache_SaveAndGetStruct(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	type box struct {
		Title string `json:"title"`
		Order int    `json:"order"`
	}

	require.NoError(t, c.Save(ctx, "boxes", box{Title: "Diagnostics", Order: 3}, 10))

	var got box
	require.NoError(t, c.Get(ctx, "boxes", &got))
	assert.Equal(t, box{Title: "Diagnostics", Order: 3}, got)
}

func TestRedisCache_GetMissing(t *testing.T) {
	c, _ := newCache(t)

	var got string
	err := c.Get(context.Background(), "absent", &got)

	require.Error(t, err)
	assert.True(t, cache.IsMiss(err))
}

func TestRedisCache_ClearByPattern(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "cms:blogs:blogs?a", "1", 60))
	require.NoError(t, c.Save(ctx, "cms:blogs:blogs?b", "2", 60))
	require.NoError(t, c.Save(ctx, "cms:reviews:reviews", "3", 60))

	require.NoError(t, c.Clear(ctx, "cms:blogs:*"))

	assert.False(t, mr.Exists("cms:blogs:blogs?a"))
	assert.False(t, mr.Exists("cms:blogs:blogs?b"))
	assert.True(t, mr.Exists("cms:reviews:reviews"))
}

func TestNewRedisCache_NilClientNeverStores(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "key", "value", 60))

	var got string
	err := c.Get(ctx, "key", &got)
	require.Error(t, err)
	assert.True(t, cache.IsMiss(err))
	assert.Empty(t, got)

	assert.NoError(t, c.Clear(ctx, "*"))
	assert.False(t, cache.Stores(c))
}

func TestStores(t *testing.T) {
	c, _ := newCache(t)

	assert.True(t, cache.Stores(c))
	assert.False(t, cache.Stores(nil))
}
