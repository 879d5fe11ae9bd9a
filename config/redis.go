package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the shared cache client. It stays nil when REDIS_HOST is
// not configured; callers must treat caching as optional.
var Redis *redis.Client

// InitRedis connects to Redis if configured. Cache misses are always
// tolerated, so a missing or unreachable Redis only disables caching.
func InitRedis() {
	config, err := LoadConfig()
	if err != nil || config.RedisHost == "" {
		log.Println("Redis not configured, response caching disabled")
		return
	}

	port := config.RedisPort
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.RedisHost, port),
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable, response caching disabled: %v", err)
		return
	}

	Redis = client
}
