package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportFormat identifies the file format of a bulk import.
type ImportFormat string

const (
	ImportFormatJSON ImportFormat = "json"
	ImportFormatCSV  ImportFormat = "csv"
)

// ImportJob records the outcome of a single bulk import: how many rows were
// persisted, how many were skipped, and the per-line warnings produced while
// parsing. Imports are best-effort, so the warnings are the only trace of
// dropped rows.
type ImportJob struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Format        ImportFormat
	ImportedCount int
	SkippedCount  int
	Warnings      []string
	CreatedAt     time.Time
}

// NewImportJob creates a new ImportJob entity.
func NewImportJob(userID uuid.UUID, format ImportFormat, imported, skipped int, warnings []string) *ImportJob {
	return &ImportJob{
		ID:            uuid.New(),
		UserID:        userID,
		Format:        format,
		ImportedCount: imported,
		SkippedCount:  skipped,
		Warnings:      warnings,
		CreatedAt:     time.Now().UTC(),
	}
}
