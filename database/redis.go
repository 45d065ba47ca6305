package database

import (
	"context"
	"time"

	"pms_server/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the Redis client used for availability caching.
// Returns nil when the server is unreachable; callers degrade to uncached reads.
func ConnectRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
