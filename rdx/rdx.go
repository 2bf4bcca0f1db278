package rdx

import (
	"time"

	"vesture/config"
	"vesture/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Connect opens the Redis connection used for the username cache, the
// issued-token store and the notification pub/sub channel.
func Connect(cfg *config.Config) error {
	Conn = redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	return Conn.Ping(globals.Ctx).Err()
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) (int64, error) {
	return Conn.Del(globals.Ctx, key).Result()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHget(hash, field string) (string, error) {
	return Conn.HGet(globals.Ctx, hash, field).Result()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, field).Result()
}
