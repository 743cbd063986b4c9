package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Conn.Ping(ctx).Err(); err != nil {
		log.Printf("Redis not reachable at %s: %v", addr, err)
	}
}

// Session token hash helpers. Tokens for logged-in users live in one Redis
// hash so logout can revoke them across instances.

func RdxHset(hash, key, value string) error {
	return Conn.HSet(context.Background(), hash, key, value).Err()
}

func RdxHget(hash, key string) (string, error) {
	return Conn.HGet(context.Background(), hash, key).Result()
}

func RdxHdel(hash, key string) (int64, error) {
	return Conn.HDel(context.Background(), hash, key).Result()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(context.Background(), key, value, ttl).Err()
}
