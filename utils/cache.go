// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"breakthrough/config"

	"github.com/go-redis/redis/v8"
)

// DedupClient is the Redis client backing the webhook delivery dedup guard.
// It stays nil when REDIS_ADDR is not configured, in which case duplicate
// suppression is disabled and every delivery is processed.
var DedupClient *redis.Client

// InitDedup initializes the Redis client for webhook delivery dedup.
func InitDedup() {
	if config.AppConfig.RedisAddr == "" {
		return
	}
	DedupClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDedupDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DedupClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Dedup): %v", err)
	}
}

// GetDedupClient returns the dedup client, or nil when dedup is disabled.
func GetDedupClient() *redis.Client {
	return DedupClient
}
