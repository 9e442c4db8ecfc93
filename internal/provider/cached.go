package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bilgisen/newsapi/internal/cache"
	"github.com/bilgisen/newsapi/internal/logger"
	"github.com/bilgisen/newsapi/internal/metrics"
	"github.com/bilgisen/newsapi/internal/models"
)

const relevantKey = "relevant"

// Cached serves RelevantNews from a cache and falls back to the wrapped
// provider on a miss. Cache failures are logged and never returned.
type Cached struct {
	inner   Provider
	cache   cache.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewCached(inner Provider, c cache.Cache, ttl time.Duration, m *metrics.Metrics) *Cached {
	return &Cached{
		inner:   inner,
		cache:   c,
		ttl:     ttl,
		metrics: m,
	}
}

func (p *Cached) RelevantNews(ctx context.Context) ([]models.NewsItem, error) {
	log := logger.Get()

	items, ok, err := p.lookup(ctx)
	switch {
	case err != nil:
		p.count(metrics.CacheError)
		log.Warn().Err(err).Msg("Provider cache lookup failed, using provider")
	case ok:
		p.count(metrics.CacheHit)
		return items, nil
	default:
		p.count(metrics.CacheMiss)
	}

	items, err = p.inner.RelevantNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching relevant news: %w", err)
	}

	if err := p.store(ctx, items); err != nil {
		log.Warn().Err(err).Msg("Failed to cache relevant news")
	}

	return items, nil
}

func (p *Cached) lookup(ctx context.Context) ([]models.NewsItem, bool, error) {
	data, ok, err := p.cache.Get(ctx, relevantKey)
	if err != nil || !ok {
		return nil, false, err
	}

	var items []models.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached news: %w", err)
	}
	return items, true, nil
}

func (p *Cached) store(ctx context.Context, items []models.NewsItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode news: %w", err)
	}
	return p.cache.Set(ctx, relevantKey, data, p.ttl)
}

func (p *Cached) count(result string) {
	if p.metrics != nil {
		p.metrics.ProviderCache.WithLabelValues(result).Inc()
	}
}
