package store

import (
	"context"
	"sync"

	"github.com/bilgisen/newsapi/internal/logger"
	"github.com/bilgisen/newsapi/internal/models"
)

// Store is the mutable ordered collection of news items.
type Store interface {
	List(ctx context.Context) ([]models.NewsItem, error)
	Add(ctx context.Context, item models.NewsItem) (models.NewsItem, error)
	Len() int
}

// Memory keeps news items in insertion order for the lifetime of the process.
// Writers are serialized by mu; the relative order of concurrent Adds is the
// order in which they acquire the lock.
type Memory struct {
	mu    sync.RWMutex
	items []models.NewsItem
}

func NewMemory() *Memory {
	return &Memory{}
}

// List returns a copy of all items in insertion order. Never nil.
func (m *Memory) List(ctx context.Context) ([]models.NewsItem, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		m.mu.RLock()
		defer m.mu.RUnlock()

		out := make([]models.NewsItem, len(m.items))
		copy(out, m.items)
		return out, nil
	}
}

// Add appends item to the end of the sequence and returns it unchanged.
// There is no dedup: adding the same item twice stores it twice.
func (m *Memory) Add(ctx context.Context, item models.NewsItem) (models.NewsItem, error) {
	select {
	case <-ctx.Done():
		return models.NewsItem{}, ctx.Err()
	default:
		m.mu.Lock()
		m.items = append(m.items, item)
		n := len(m.items)
		m.mu.Unlock()

		logger.Get().Debug().
			Str("title", item.Title).
			Int("count", n).
			Msg("News item added")

		return item, nil
	}
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
