// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// importJobRepository implements the adapter.ImportJobRepository interface.
type importJobRepository struct {
	db *gorm.DB
}

// NewImportJobRepository creates a new import job repository instance.
func NewImportJobRepository(db *gorm.DB) adapter.ImportJobRepository {
	return &importJobRepository{
		db: db,
	}
}

// Create records a completed import.
func (r *importJobRepository) Create(ctx context.Context, job *entity.ImportJob) error {
	jobModel := model.ImportJobFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves a user's import history, newest first.
func (r *importJobRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ImportJob, error) {
	var jobModels []model.ImportJobModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.ImportJob, len(jobModels))
	for i, jm := range jobModels {
		jobs[i] = jm.ToEntity()
	}
	return jobs, nil
}
