package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, KeyValueStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewKeyValueStore(client)
}

func TestRedisStore_SetGetExpire(t *testing.T) {
	mr, kv := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "sess:1", "user-1", time.Hour))

	value, err := kv.Get(ctx, "sess:1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", value)
	assert.Equal(t, time.Hour, mr.TTL("sess:1"))

	mr.FastForward(time.Hour + time.Second)

	_, err = kv.Get(ctx, "sess:1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_GetDelIsSingleUse(t *testing.T) {
	_, kv := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "forget-password:abc", "user-1", time.Hour))

	value, err := kv.GetDel(ctx, "forget-password:abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", value)

	_, err = kv.GetDel(ctx, "forget-password:abc")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	mr, kv := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "a", "1", 0))
	require.NoError(t, kv.Set(ctx, "b", "2", 0))

	require.NoError(t, kv.Delete(ctx, "a", "b", "missing"))
	require.NoError(t, kv.Delete(ctx))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}

func TestRedisStore_Sets(t *testing.T) {
	mr, kv := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.AddToSet(ctx, "user-sess:1", "s1", time.Hour))
	require.NoError(t, kv.AddToSet(ctx, "user-sess:1", "s2", 2*time.Hour))

	members, err := kv.SetMembers(ctx, "user-sess:1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s1", "s2"}, members)
	assert.Equal(t, 2*time.Hour, mr.TTL("user-sess:1"))

	require.NoError(t, kv.RemoveFromSet(ctx, "user-sess:1", "s1"))
	require.NoError(t, kv.RemoveFromSet(ctx, "user-sess:1"))

	members, err = kv.SetMembers(ctx, "user-sess:1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s2"}, members)

	members, err = kv.SetMembers(ctx, "user-sess:none")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestRedisStore_Outage(t *testing.T) {
	mr, kv := newTestRedis(t)
	ctx := context.Background()
	mr.Close()

	_, err := kv.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
	assert.Error(t, kv.Set(ctx, "k", "v", time.Minute))
	assert.Error(t, kv.Ping(ctx))
}

func TestNewConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewConnectRedis(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	_, err = NewConnectRedis(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
	assert.Error(t, err)
}
