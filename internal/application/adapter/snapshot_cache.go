// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SnapshotCache caches the last-seen transaction snapshot per user.
// It is a read-through optimization only: a miss or a cache outage must never
// surface to the caller, and every mutation invalidates the owning user's entry.
type SnapshotCache interface {
	// Get returns the cached snapshot for the user, or ok=false on a miss.
	Get(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, bool)

	// Set stores the snapshot for the user.
	Set(ctx context.Context, userID uuid.UUID, transactions []*entity.Transaction)

	// Invalidate drops the cached snapshot for the user.
	Invalidate(ctx context.Context, userID uuid.UUID)
}
