package inflight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the flag only if it still carries the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGate shares the in-flight flags between portal instances.
type RedisGate struct {
	rdb *redis.Client
}

func NewRedisGate(rdb *redis.Client) *RedisGate {
	return &RedisGate{rdb: rdb}
}

func redisKey(key string) string {
	return fmt.Sprintf("inflight:%s", key)
}

func (g *RedisGate) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := g.rdb.SetNX(ctx, redisKey(key), token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (g *RedisGate) Release(ctx context.Context, key, token string) error {
	return releaseScript.Run(ctx, g.rdb, []string{redisKey(key)}, token).Err()
}
