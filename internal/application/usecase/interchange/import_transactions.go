package interchange

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ImportTransactionsInput represents the input for a bulk import.
type ImportTransactionsInput struct {
	UserID  uuid.UUID
	Format  entity.ImportFormat
	Content string
}

// ImportTransactionsOutput represents the result of a bulk import.
type ImportTransactionsOutput struct {
	ImportedCount int
	SkippedCount  int
	Warnings      []string
}

// ImportTransactionsUseCase handles bulk transaction imports from JSON or CSV
// files. CSV imports are best-effort and partial; JSON imports fail outright
// on a malformed file but skip individually invalid records. Every completed
// import is recorded and acknowledged with a receipt email.
type ImportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	importJobRepo   adapter.ImportJobRepository
	emailService    adapter.EmailService
	snapshotCache   adapter.SnapshotCache
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	importJobRepo adapter.ImportJobRepository,
	emailService adapter.EmailService,
	snapshotCache adapter.SnapshotCache,
) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		importJobRepo:   importJobRepo,
		emailService:    emailService,
		snapshotCache:   snapshotCache,
	}
}

// Execute parses the uploaded file, persists the valid records and records the
// import outcome. Returns the counts and warnings the caller should surface.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	var records []Record
	var warnings []string
	var err error

	switch input.Format {
	case entity.ImportFormatJSON:
		records, warnings, err = ParseJSONTransactions(input.Content, input.UserID.String())
		if err != nil {
			return nil, err
		}
	case entity.ImportFormatCSV:
		records, warnings = ParseCSVTransactions(input.Content, input.UserID.String())
	default:
		return nil, domainerror.NewInterchangeError(
			domainerror.ErrCodeUnsupportedImportFormat,
			"import format must be json or csv",
			domainerror.ErrUnsupportedImportFormat,
		)
	}

	if len(records) == 0 {
		return nil, domainerror.NewInterchangeError(
			domainerror.ErrCodeNoImportableRows,
			"no valid transactions found in the file",
			domainerror.ErrNoImportableRows,
		)
	}

	transactions := make([]*entity.Transaction, len(records))
	for i, record := range records {
		transactions[i] = record.ToEntity(input.UserID)
	}

	if err := uc.transactionRepo.BulkCreate(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to persist imported transactions: %w", err)
	}

	uc.snapshotCache.Invalidate(ctx, input.UserID)

	job := entity.NewImportJob(input.UserID, input.Format, len(records), len(warnings), warnings)
	if err := uc.importJobRepo.Create(ctx, job); err != nil {
		slog.Error("Failed to record import job", "error", err, "user_id", input.UserID)
	}

	uc.queueReceipt(ctx, input.UserID, job)

	return &ImportTransactionsOutput{
		ImportedCount: len(records),
		SkippedCount:  len(warnings),
		Warnings:      warnings,
	}, nil
}

// queueReceipt queues the import receipt email. Failures are logged only; a
// completed import is never rolled back over a notification.
func (uc *ImportTransactionsUseCase) queueReceipt(ctx context.Context, userID uuid.UUID, job *entity.ImportJob) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Error("Failed to load user for import receipt", "error", err, "user_id", userID)
		return
	}
	if err := uc.emailService.QueueImportReceiptEmail(ctx, user, job); err != nil {
		slog.Error("Failed to queue import receipt email", "error", err, "user_id", userID)
	}
}
