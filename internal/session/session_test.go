package session

import (
	"context"
	"testing"
	"time"

	"wellness-journal/internal/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Cleanup(func() { newToken = uuid.NewString })
	newToken = func() string { return "tok-1" }

	var gotKey string
	var gotVal any
	var gotTTL time.Duration
	rdb := &cache.FakeCache{
		SetFn: func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
			gotKey, gotVal, gotTTL = key, val, ttl
			return redis.NewStatusResult("OK", nil)
		},
	}

	token, err := Create(context.Background(), rdb, 7, DefaultTTL)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.Equal(t, "session:tok-1", gotKey)
	require.Equal(t, 7, gotVal)
	require.Equal(t, DefaultTTL, gotTTL)
}

func TestCreateSetError(t *testing.T) {
	rdb := &cache.FakeCache{
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", redis.ErrClosed)
		},
	}
	_, err := Create(context.Background(), rdb, 7, DefaultTTL)
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	rdb := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			require.Equal(t, "session:tok-1", key)
			return redis.NewStringResult("7", nil)
		},
	}
	userID, err := Resolve(context.Background(), rdb, "tok-1")
	require.NoError(t, err)
	require.Equal(t, 7, userID)
}

func TestResolveMissing(t *testing.T) {
	rdb := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
	}
	_, err := Resolve(context.Background(), rdb, "gone")
	require.Error(t, err)
}

func TestResolveBadValue(t *testing.T) {
	rdb := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("not-a-number", nil)
		},
	}
	_, err := Resolve(context.Background(), rdb, "tok-1")
	require.Error(t, err)
}

func TestDestroy(t *testing.T) {
	deleted := []string{}
	rdb := &cache.FakeCache{
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			deleted = append(deleted, keys...)
			return redis.NewIntResult(0, nil)
		},
	}
	// 不存在的 token 也要回傳成功（冪等）
	require.NoError(t, Destroy(context.Background(), rdb, "gone"))
	require.Equal(t, []string{"session:gone"}, deleted)
}

func TestDestroyError(t *testing.T) {
	rdb := &cache.FakeCache{
		DelFn: func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(0, redis.ErrClosed)
		},
	}
	require.Error(t, Destroy(context.Background(), rdb, "tok"))
}
