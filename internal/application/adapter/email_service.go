// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// EmailService defines the interface for queueing application emails.
// Queueing is fire-and-forget: a full queue table or database hiccup is
// logged by the implementation and never fails the originating operation.
type EmailService interface {
	// QueueImportReceiptEmail queues a summary email after a bulk import.
	QueueImportReceiptEmail(ctx context.Context, user *entity.User, job *entity.ImportJob) error
}
