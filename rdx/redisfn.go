package rdx

import (
	"time"

	"pawmart/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init opens the Redis connection used for list caching and the event
// channel. Redis being down degrades caching, it never blocks serving.
func Init(addr string) {
	Conn = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func SetWithExpiry(key, value string, expiry time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, expiry).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) (int64, error) {
	return Conn.Del(globals.Ctx, key).Result()
}
