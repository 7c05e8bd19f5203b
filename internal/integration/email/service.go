// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueImportReceiptEmail queues a summary email after a bulk import.
func (s *Service) QueueImportReceiptEmail(ctx context.Context, user *entity.User, job *entity.ImportJob) error {
	subject := fmt.Sprintf("Your %s import is complete - Expense Tracker", job.Format)

	templateData := map[string]interface{}{
		"user_name":      user.DisplayName,
		"format":         string(job.Format),
		"imported_count": job.ImportedCount,
		"skipped_count":  job.SkippedCount,
		"warnings":       job.Warnings,
	}

	emailJob := entity.NewEmailJob(
		entity.TemplateImportReceipt,
		user.Email,
		user.DisplayName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, emailJob); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue import receipt email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
