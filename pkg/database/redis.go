package database

import (
	"context"
	"time"

	"campsite-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the Redis client used by the booking rate limiter.
// Returns nil when disabled or unreachable; callers degrade to pass-through.
func InitRedis(config utils.RedisConfig) *redis.Client {
	if !config.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil
	}

	return client
}
