package cms_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"lifecare/config"
	"lifecare/infras/cms"
	"lifecare/infras/metrics"
	otelMocks "lifecare/infras/otel/mocks"
	"lifecare/shared/cache"
	cacheMocks "lifecare/shared/cache/mocks"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig(baseURL, token string) *config.Config {
	cfg := &config.Config{}
	cfg.External.CMS.BaseURL = baseURL
	cfg.External.CMS.Token = token

	return cfg
}

func newRedisCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, otelMocks.NewOtel()), mr
}

func doctorsQuery() url.Values {
	return url.Values{"sort": {"order:asc"}, "populate": {"image"}}
}

func TestFetch_SendsRequestWithBearerToken(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotContentType string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("sort")
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	client := cms.New(newConfig(ts.URL+"/", "secret"), cache.NewRedisCache(nil, nil), otelMocks.NewOtel(), nil)

	body, err := client.Fetch(context.Background(), "doctors", doctorsQuery(), cms.FetchOptions{Tags: []string{"doctors"}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
	assert.Equal(t, "/api/doctors", gotPath)
	assert.Equal(t, "order:asc", gotQuery)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestFetch_OmitsAuthorizationWithoutToken(t *testing.T) {
	var hasAuth bool

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	client := cms.New(newConfig(ts.URL, ""), cache.NewRedisCache(nil, nil), otelMocks.NewOtel(), nil)

	_, err := client.Fetch(context.Background(), "reviews", nil, cms.FetchOptions{})

	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := cms.New(newConfig(ts.URL, ""), cache.NewRedisCache(nil, nil), otelMocks.NewOtel(), metrics.New(prometheus.NewRegistry()))

	body, err := client.Fetch(context.Background(), "doctors", doctorsQuery(), cms.FetchOptions{})

	require.Error(t, err)
	assert.Nil(t, body)
	assert.True(t, cms.IsStatus(err, http.StatusInternalServerError))

	var statusErr *cms.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "doctors", statusErr.Collection)
}

func TestFetch_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close()

	client := cms.New(newConfig(ts.URL, ""), cache.NewRedisCache(nil, nil), otelMocks.NewOtel(), nil)

	_, err := client.Fetch(context.Background(), "doctors", nil, cms.FetchOptions{})

	require.Error(t, err)
	assert.False(t, cms.IsStatus(err, http.StatusInternalServerError))
}

func TestFetch_CachesUntilInvalidated(t *testing.T) {
	var hits atomic.Int32

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"data":[{"id":1,"attributes":{"title":"Hello"}}]}`))
	}))
	defer ts.Close()

	redisCache, mr := newRedisCache(t)
	client := cms.New(newConfig(ts.URL, ""), redisCache, otelMocks.NewOtel(), nil)
	ctx := context.Background()
	opts := cms.FetchOptions{Tags: []string{"blogs"}}

	first, err := client.Fetch(ctx, "blogs", url.Values{"sort": {"publicationDate:desc"}}, opts)
	require.NoError(t, err)

	second, err := client.Fetch(ctx, "blogs", url.Values{"sort": {"publicationDate:desc"}}, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
	assert.Len(t, mr.Keys(), 1)

	require.NoError(t, client.Invalidate(ctx, "blogs"))
	assert.Empty(t, mr.Keys())

	_, err = client.Fetch(ctx, "blogs", url.Values{"sort": {"publicationDate:desc"}}, opts)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetch_NegativeRevalidateSkipsCache(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	client := cms.New(newConfig(ts.URL, ""), mockCache, otelMocks.NewOtel(), nil)

	_, err := client.Fetch(context.Background(), "boxes", nil, cms.FetchOptions{Revalidate: -1})

	require.NoError(t, err)
}

func TestFetch_CacheFailureFallsThroughToOrigin(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":1,"attributes":{}}}`))
	}))
	defer ts.Close()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), "cms:clinic-info:clinic-info?", gomock.Any()).Return(errors.New("connection refused"))
	mockCache.EXPECT().Save(gomock.Any(), "cms:clinic-info:clinic-info?", gomock.Any(), cms.DefaultRevalidateSeconds).Return(errors.New("connection refused"))

	client := cms.New(newConfig(ts.URL, ""), mockCache, otelMocks.NewOtel(), nil)

	body, err := client.Fetch(context.Background(), "clinic-info", nil, cms.FetchOptions{Tags: []string{"clinic-info"}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":1,"attributes":{}}}`, string(body))
}

func TestInvalidate_ClearsTagPattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "cms:reviews:*").Return(nil)

	client := cms.New(newConfig("http://cms.local", ""), mockCache, otelMocks.NewOtel(), nil)

	assert.NoError(t, client.Invalidate(context.Background(), "reviews"))
}
