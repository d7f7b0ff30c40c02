// File: internal/session/session.go
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"wellness-journal/internal/cache"

	"github.com/google/uuid"
)

const keyPrefix = "session:"

// DefaultTTL 預設 session 存活時間
const DefaultTTL = 24 * time.Hour

// newToken 產生不透明 session token，測試可覆寫
var newToken = uuid.NewString

// Create 產生 token 並在 Redis 綁定 user id
func Create(ctx context.Context, rdb cache.Cache, userID int, ttl time.Duration) (string, error) {
	token := newToken()
	if err := rdb.Set(ctx, keyPrefix+token, userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("session.Create: %w", err)
	}
	return token, nil
}

// Resolve 由 token 查回 user id，查無或已過期回傳錯誤
func Resolve(ctx context.Context, rdb cache.Cache, token string) (int, error) {
	val, err := rdb.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		return 0, fmt.Errorf("session.Resolve: %w", err)
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("session.Resolve: %w", err)
	}
	return userID, nil
}

// Destroy 清除綁定，token 不存在也視為成功
func Destroy(ctx context.Context, rdb cache.Cache, token string) error {
	if err := rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("session.Destroy: %w", err)
	}
	return nil
}
