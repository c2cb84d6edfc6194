package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore checks the behavior every backend shares.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save(ctx, "tok123"))
	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	require.NoError(t, s.Save(ctx, "tok456"))
	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok456", token)

	require.NoError(t, s.Delete(ctx))
	require.NoError(t, s.Delete(ctx))
	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory(""))
}

func TestFile(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		exerciseStore(t, NewFile(filepath.Join(t.TempDir(), "nested", "token"), ""))
	})
	t.Run("sealed", func(t *testing.T) {
		exerciseStore(t, NewFile(filepath.Join(t.TempDir(), "token"), "s3cret"))
	})
}

func TestFileSealedOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")

	require.NoError(t, NewFile(path, "s3cret").Save(ctx, "tok123"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok123")

	token, err := NewFile(path, "s3cret").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	_, err = NewFile(path, "other").Load(ctx)
	assert.ErrorIs(t, err, ErrSealedToken)
}

func TestRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	s := NewRedis(rdb, "folio")
	exerciseStore(t, s)

	require.NoError(t, s.Save(context.Background(), "tok123"))
	got, err := mr.Get("folio:token")
	require.NoError(t, err)
	assert.Equal(t, "tok123", got)
}

func TestRedisUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	_, err = NewRedis(rdb, "").Load(context.Background())
	assert.Error(t, err)
}
