// Package db provides database connection and management functionality.
package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/config"
)

// NewRedisClient connects to Redis for the snapshot cache. A nil client is
// returned when Redis is disabled or unreachable; callers treat that as
// cache-off and serve from the database.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		slog.Info("Redis disabled, snapshot cache is off")
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, snapshot cache is off", "error", err)
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis connection failed, snapshot cache is off", "error", err)
		_ = client.Close()
		return nil
	}

	slog.Info("Redis connection established")
	return client
}
