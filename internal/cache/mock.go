package cache

import (
	"context"
	"sync"
	"time"
)

// MockClient is an in-process Cache for tests and for running without Redis.
type MockClient struct {
	mu   sync.Mutex
	data map[string]mockEntry
	now  func() time.Time
}

type mockEntry struct {
	value     []byte
	expiresAt time.Time
}

func NewMockClient() *MockClient {
	return &MockClient{
		data: make(map[string]mockEntry),
		now:  time.Now,
	}
}

func (m *MockClient) Close() error {
	return nil
}

func (m *MockClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		delete(m.data, key)
		return nil, false, nil
	}
	return append([]byte(nil), entry.value...), true, nil
}

func (m *MockClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := mockEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}
