package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// incrementScript runs INCR and, on the absent -> 1 transition, EXPIRE in one
// round trip so a key can never be left without a TTL.
var incrementScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return count
`)

type RedisStore struct {
	client redis.Scripter
}

func NewRedisStore(client redis.Scripter) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) IncrementAndGetCount(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return incrementScript.Run(ctx, s.client, []string{key}, seconds).Int64()
}
