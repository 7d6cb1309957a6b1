package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"

	"lumea/config"
)

// HealthStatus is the latest probe of the stores the booking engine
// depends on: the appointment store, the availability cache and the
// notification queue.
type HealthStatus struct {
	Appointments bool      `json:"appointments"`
	Cache        bool      `json:"cache"`
	NotifyQueue  bool      `json:"notifyQueue"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings mongo, the cache DB and the notification
// queue DB once a minute and keeps the snapshot in memory for the
// health endpoint.
func StartHealthMonitor(cache *redis.Client, mongoClient *mongo.Client) {
	queue := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			snapshot := HealthStatus{
				Appointments: mongoClient.Ping(ctx, nil) == nil,
				Cache:        cache.Ping(ctx).Err() == nil,
				NotifyQueue:  queue.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
