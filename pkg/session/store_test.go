package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb, time.Hour), mr
}

func TestRedisStoreLoadEmpty(t *testing.T) {
	store, _ := newTestRedisStore(t)

	l, err := store.Load(context.Background(), "not-exists")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestRedisStoreSaveAndLoad(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	l := NewVisitedList()
	l.Push(1)
	l.Push(2)
	require.NoError(t, store.Save(ctx, "sid", l))

	values, err := mr.List("session:sid:visited")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, values)
	assert.Equal(t, time.Hour, mr.TTL("session:sid:visited"))

	loaded, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 1}, loaded.IDs())

	// 覆盖写入
	loaded.Push(1)
	require.NoError(t, store.Save(ctx, "sid", loaded))
	values, _ = mr.List("session:sid:visited")
	assert.Equal(t, []string{"1", "2"}, values)
}

func TestRedisStoreSkipDirtyValue(t *testing.T) {
	store, mr := newTestRedisStore(t)

	_, err := mr.Push("session:sid:visited", "3", "oops", "4")
	require.NoError(t, err)

	l, err := store.Load(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 4}, l.IDs())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid", NewVisitedList(5, 6)))
	l, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 6}, l.IDs())

	other, err := store.Load(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Len())
}
