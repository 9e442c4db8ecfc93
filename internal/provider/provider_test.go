package provider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bilgisen/newsapi/internal/cache"
	"github.com/bilgisen/newsapi/internal/config"
	"github.com/bilgisen/newsapi/internal/metrics"
	"github.com/bilgisen/newsapi/internal/models"
	"github.com/bilgisen/newsapi/internal/provider"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls int
	items []models.NewsItem
	err   error
}

func (c *countingProvider) RelevantNews(ctx context.Context) ([]models.NewsItem, error) {
	c.calls++
	return c.items, c.err
}

type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("connection refused")
}

func (failingCache) Close() error { return nil }

func TestStatic_Default(t *testing.T) {
	p := provider.NewStatic()

	items, err := p.RelevantNews(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)
	require.Equal(t, provider.SampleNews, items)

	for _, item := range items {
		require.NotEmpty(t, item.Title)
		require.NotEmpty(t, item.URL)
		require.NotEmpty(t, item.Summary)
	}
}

func TestStatic_ReturnsCopy(t *testing.T) {
	p := provider.NewStatic(models.NewsItem{Title: "One"}, models.NewsItem{Title: "Two"})

	first, err := p.RelevantNews(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	first[0].Title = "Changed"

	second, err := p.RelevantNews(context.Background())
	require.NoError(t, err)
	require.Equal(t, "One", second[0].Title)
}

func TestCached_MissThenHit(t *testing.T) {
	inner := &countingProvider{items: []models.NewsItem{{Title: "A", URL: "https://a", Summary: "a"}}}
	m := metrics.New()
	p := provider.NewCached(inner, cache.NewMockClient(), time.Minute, m)
	ctx := context.Background()

	first, err := p.RelevantNews(ctx)
	require.NoError(t, err)
	second, err := p.RelevantNews(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, inner.calls)
	require.Equal(t, float64(1), testutil.ToFloat64(m.ProviderCache.WithLabelValues(metrics.CacheMiss)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.ProviderCache.WithLabelValues(metrics.CacheHit)))
}

func TestCached_CacheErrorFallsBack(t *testing.T) {
	inner := &countingProvider{items: provider.SampleNews}
	m := metrics.New()
	p := provider.NewCached(inner, failingCache{}, time.Minute, m)

	items, err := p.RelevantNews(context.Background())
	require.NoError(t, err)
	require.Equal(t, provider.SampleNews, items)
	require.Equal(t, float64(1), testutil.ToFloat64(m.ProviderCache.WithLabelValues(metrics.CacheError)))
}

func TestCached_InnerError(t *testing.T) {
	inner := &countingProvider{err: errors.New("upstream down")}
	p := provider.NewCached(inner, cache.NewMockClient(), time.Minute, nil)

	_, err := p.RelevantNews(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream down")
}

func TestCached_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	rc, err := cache.NewRedisClient(&config.Config{
		RedisURL:    "redis://" + mr.Addr(),
		RedisPrefix: "newsfeed:",
	})
	require.NoError(t, err)
	defer rc.Close()

	inner := &countingProvider{items: provider.SampleNews}
	p := provider.NewCached(inner, rc, time.Minute, nil)
	ctx := context.Background()

	_, err = p.RelevantNews(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists("newsfeed:relevant"))

	items, err := p.RelevantNews(ctx)
	require.NoError(t, err)
	require.Equal(t, provider.SampleNews, items)
	require.Equal(t, 1, inner.calls)

	// Redis going away must not break the feed
	mr.Close()
	items, err = p.RelevantNews(ctx)
	require.NoError(t, err)
	require.Equal(t, provider.SampleNews, items)
	require.Equal(t, 2, inner.calls)
}
