// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// snapshotTTL bounds staleness if an invalidation is ever lost.
const snapshotTTL = 5 * time.Minute

// redisSnapshotCache implements adapter.SnapshotCache on Redis. The cache is
// strictly an optimization: every failure is logged and reported as a miss so
// an outage degrades to database reads instead of request errors.
type redisSnapshotCache struct {
	client *redis.Client
}

// NewRedisSnapshotCache creates a new Redis snapshot cache instance.
func NewRedisSnapshotCache(client *redis.Client) adapter.SnapshotCache {
	return &redisSnapshotCache{
		client: client,
	}
}

func snapshotKey(userID uuid.UUID) string {
	return "snapshot:" + userID.String()
}

// Get retrieves a user's cached transaction snapshot.
func (c *redisSnapshotCache) Get(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, snapshotKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Snapshot cache read failed", "error", err, "user_id", userID)
		}
		return nil, false
	}

	var transactions []*entity.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		slog.Warn("Snapshot cache entry corrupt, dropping", "error", err, "user_id", userID)
		c.Invalidate(ctx, userID)
		return nil, false
	}

	return transactions, true
}

// Set stores a user's transaction snapshot.
func (c *redisSnapshotCache) Set(ctx context.Context, userID uuid.UUID, transactions []*entity.Transaction) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(transactions)
	if err != nil {
		slog.Warn("Failed to marshal snapshot for cache", "error", err, "user_id", userID)
		return
	}

	if err := c.client.Set(ctx, snapshotKey(userID), data, snapshotTTL).Err(); err != nil {
		slog.Warn("Snapshot cache write failed", "error", err, "user_id", userID)
	}
}

// Invalidate drops a user's cached snapshot.
func (c *redisSnapshotCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, snapshotKey(userID)).Err(); err != nil {
		slog.Warn("Snapshot cache invalidation failed", "error", err, "user_id", userID)
	}
}
