package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bilgisen/newsapi/internal/config"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.Config{
		RedisURL:    "redis://" + mr.Addr(),
		RedisPrefix: "test:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestRedisClient_GetMiss(t *testing.T) {
	client, _ := newTestRedis(t)

	data, ok, err := client.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, data)
}

func TestRedisClient_SetGetWithPrefix(t *testing.T) {
	client, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "relevant", []byte(`[1,2]`), time.Minute))

	raw, err := mr.Get("test:relevant")
	require.NoError(t, err)
	require.Equal(t, `[1,2]`, raw)

	data, ok, err := client.Get(ctx, "relevant")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[1,2]`), data)
}

func TestRedisClient_Expiry(t *testing.T) {
	client, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "relevant", []byte("x"), time.Second))
	mr.FastForward(2 * time.Second)

	_, ok, err := client.Get(ctx, "relevant")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(&config.Config{RedisURL: "not a url"})
	require.Error(t, err)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(&config.Config{RedisURL: "redis://" + addr})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestMockClient_Expiry(t *testing.T) {
	m := NewMockClient()
	now := time.Now()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))

	data, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), data)

	now = now.Add(2 * time.Minute)
	_, ok, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMockClient_GetReturnsCopy(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "k", []byte("value"), 0))

	data, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	data[0] = 'X'

	again, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), again)
}
