package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenCache fronts the auth-token table with redis so bearer lookups
// skip the database on the hot path. A nil *TokenCache disables
// caching; every method is nil-safe.
type TokenCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTokenCache(addr string) *TokenCache {
	if addr == "" {
		return nil
	}
	return &TokenCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    time.Hour,
	}
}

func tokenKey(key string) string {
	return "token:" + key
}

// GetUserID resolves a token key to a user id. The second return is
// false on miss or any redis error.
func (tc *TokenCache) GetUserID(ctx context.Context, key string) (uint, bool) {
	if tc == nil {
		return 0, false
	}
	raw, err := tc.client.Get(ctx, tokenKey(key)).Result()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (tc *TokenCache) Put(ctx context.Context, key string, userID uint) {
	if tc == nil {
		return
	}
	tc.client.Set(ctx, tokenKey(key), strconv.FormatUint(uint64(userID), 10), tc.ttl)
}

func (tc *TokenCache) Invalidate(ctx context.Context, key string) {
	if tc == nil {
		return
	}
	tc.client.Del(ctx, tokenKey(key))
}
