package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luvo/app/models/card"
	"luvo/app/models/reading"
	"luvo/pkg/redis"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(redis.RedisConfig{
		Address:  mr.Addr(),
		PoolSize: 2,
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Client.Close() })

	return NewRedisStore(client, "luvo", ttl), mr
}

func TestRedisStorePutGet(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, 0)

	fool, _ := card.Find(0)
	tower, _ := card.Find(16)
	r := &reading.Reading{
		SessionID:      "abc",
		Question:       "Что дальше?",
		SpreadType:     "three",
		Cards:          reading.Cards{fool.Deal("Прошлое", true), tower.Deal("", false)},
		Interpretation: "...",
		Timestamp:      "2025-01-02T03:04:05.000000006Z",
	}
	require.NoError(t, store.Put(ctx, r))

	assert.True(t, mr.Exists("luvo:reading:abc"))
	assert.Zero(t, mr.TTL("luvo:reading:abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, r, got)
	require.NotNil(t, got.Cards[0].Position)
	assert.Equal(t, "Прошлое", *got.Cards[0].Position)
	assert.Nil(t, got.Cards[1].Position)
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	require.NoError(t, store.Put(ctx, &reading.Reading{SessionID: "abc", SpreadType: "single"}))
	assert.Equal(t, time.Hour, mr.TTL("luvo:reading:abc"))

	mr.FastForward(time.Hour + time.Second)
	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreMissing(t *testing.T) {
	store, _ := newRedisStore(t, 0)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreCorruptValue(t *testing.T) {
	store, mr := newRedisStore(t, 0)
	require.NoError(t, mr.Set("luvo:reading:bad", "{not json"))

	_, err := store.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRedisStorePing(t *testing.T) {
	store, mr := newRedisStore(t, 0)
	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
