// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ImportJobModel represents the import_jobs table in the database.
type ImportJobModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Format        string         `gorm:"type:varchar(10);not null"`
	ImportedCount int            `gorm:"not null;default:0"`
	SkippedCount  int            `gorm:"not null;default:0"`
	Warnings      pq.StringArray `gorm:"type:text[]"`
	CreatedAt     time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the ImportJobModel.
func (ImportJobModel) TableName() string {
	return "import_jobs"
}

// ToEntity converts an ImportJobModel to a domain ImportJob entity.
func (m *ImportJobModel) ToEntity() *entity.ImportJob {
	return &entity.ImportJob{
		ID:            m.ID,
		UserID:        m.UserID,
		Format:        entity.ImportFormat(m.Format),
		ImportedCount: m.ImportedCount,
		SkippedCount:  m.SkippedCount,
		Warnings:      []string(m.Warnings),
		CreatedAt:     m.CreatedAt,
	}
}

// ImportJobFromEntity creates an ImportJobModel from a domain ImportJob entity.
func ImportJobFromEntity(job *entity.ImportJob) *ImportJobModel {
	return &ImportJobModel{
		ID:            job.ID,
		UserID:        job.UserID,
		Format:        string(job.Format),
		ImportedCount: job.ImportedCount,
		SkippedCount:  job.SkippedCount,
		Warnings:      pq.StringArray(job.Warnings),
		CreatedAt:     job.CreatedAt,
	}
}
