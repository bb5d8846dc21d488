package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/database"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "a", `{"x":1}`))
	require.NoError(t, kv.Set(ctx, "b", "two"))
	require.NoError(t, kv.Set(ctx, "a", `{"x":2}`))

	v, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `{"x":2}`, v)

	v, err = kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "two", v)
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	f, err := NewFile(path)
	require.NoError(t, err)
	exerciseKV(t, f)

	reopened, err := NewFile(path)
	require.NoError(t, err)
	v, err := reopened.Get(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "two", v)
}

func TestFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f, err := NewFile(path)
	require.NoError(t, err)
	_, err = f.Get(context.Background(), "a")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRedis(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseKV(t, NewRedis(rdb))

	raw, err := s.Get(redisPrefix + "b")
	require.NoError(t, err)
	assert.Equal(t, "two", raw)
}

func TestDialRedis(t *testing.T) {
	s := miniredis.RunT(t)
	rdb, err := DialRedis(context.Background(), s.Addr(), 0)
	require.NoError(t, err)
	_ = rdb.Close()

	addr := s.Addr()
	s.Close()
	_, err = DialRedis(context.Background(), addr, 0)
	assert.Error(t, err)
}

func TestPostgres(t *testing.T) {
	uri := os.Getenv("TEST_DATABASE_URI")
	if uri == "" {
		t.Skip("TEST_DATABASE_URI not set")
	}
	ctx := context.Background()

	db, err := database.NewDB(ctx, uri)
	require.NoError(t, err)
	defer database.CloseDB(db)
	require.NoError(t, database.InitSchema(ctx, db))

	_, err = db.ExecContext(ctx, `DELETE FROM kv_store WHERE key IN ('a', 'b', 'missing')`)
	require.NoError(t, err)

	exerciseKV(t, NewPostgres(db))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, closeFn, err := Open(ctx, "memory", "", "", "", 0)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, kv)
	closeFn()

	kv, closeFn, err = Open(ctx, "file", filepath.Join(t.TempDir(), "orders.json"), "", "", 0)
	require.NoError(t, err)
	assert.IsType(t, &File{}, kv)
	closeFn()

	s := miniredis.RunT(t)
	kv, closeFn, err = Open(ctx, "redis", "", "", s.Addr(), 0)
	require.NoError(t, err)
	exerciseKV(t, kv)
	closeFn()

	_, _, err = Open(ctx, "sqlite", "", "", "", 0)
	assert.ErrorContains(t, err, `unknown storage backend "sqlite"`)
}
