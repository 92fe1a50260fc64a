package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external dependencies.
type HealthStatus struct {
	DedupEnabled bool      `json:"dedupEnabled"`
	Redis        bool      `json:"redis"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. A nil redis client marks dedup as disabled but never unhealthy.
func StartHealthMonitor(dedupClient *redis.Client) {
	record := func() {
		status := HealthStatus{
			DedupEnabled: dedupClient != nil,
			Redis:        true,
			CheckedAt:    time.Now(),
		}
		if dedupClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			status.Redis = dedupClient.Ping(ctx).Err() == nil
			cancel()
		}
		mu.Lock()
		currentHealth = status
		mu.Unlock()
	}

	record()
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			record()
		}
	}()
}
