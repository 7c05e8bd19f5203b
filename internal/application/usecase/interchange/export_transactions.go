package interchange

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// csvHeader is the fixed header row of the interchange CSV format.
const csvHeader = "Date,Type,Description,Category,Amount"

// ExportJSON renders a transaction list as a pretty-printed JSON array with
// 2-space indentation. The output round-trips exactly through ParseJSONTransactions.
func ExportJSON(transactions []*entity.Transaction) (string, error) {
	records := make([]Record, len(transactions))
	for i, txn := range transactions {
		records[i] = RecordFromEntity(txn)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal transactions: %w", err)
	}
	return string(data), nil
}

// ExportCSV renders a transaction list as CSV: a header row followed by one
// row per transaction in input order. Description and Category are quote
// wrapped with internal quotes doubled; amounts render via exact decimal
// string conversion. Rows are newline-joined without a trailing newline.
func ExportCSV(transactions []*entity.Transaction) string {
	rows := make([]string, 0, len(transactions)+1)
	rows = append(rows, csvHeader)

	for _, txn := range transactions {
		rows = append(rows, strings.Join([]string{
			txn.Date,
			string(txn.Type),
			quoteCSVField(txn.Description),
			quoteCSVField(txn.Category),
			txn.Amount.String(),
		}, ","))
	}

	return strings.Join(rows, "\n")
}

// quoteCSVField wraps a field in double quotes, doubling any internal quotes.
func quoteCSVField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// ExportTransactionsInput represents the input for a transaction export.
type ExportTransactionsInput struct {
	UserID uuid.UUID
	Format entity.ImportFormat
}

// ExportTransactionsOutput represents the output of a transaction export.
type ExportTransactionsOutput struct {
	Content     string
	ContentType string
	Filename    string
}

// ExportTransactionsUseCase renders a user's snapshot in either interchange format.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	snapshotCache   adapter.SnapshotCache
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	snapshotCache adapter.SnapshotCache,
) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		snapshotCache:   snapshotCache,
	}
}

// Execute fetches the user snapshot and renders it in the requested format.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	snapshot, ok := uc.snapshotCache.Get(ctx, input.UserID)
	if !ok {
		var err error
		snapshot, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		uc.snapshotCache.Set(ctx, input.UserID, snapshot)
	}

	date := currentDate()

	switch input.Format {
	case entity.ImportFormatJSON:
		content, err := ExportJSON(snapshot)
		if err != nil {
			return nil, err
		}
		return &ExportTransactionsOutput{
			Content:     content,
			ContentType: "application/json",
			Filename:    fmt.Sprintf("expense-tracker-%s.json", date),
		}, nil

	case entity.ImportFormatCSV:
		return &ExportTransactionsOutput{
			Content:     ExportCSV(snapshot),
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("expense-tracker-%s.csv", date),
		}, nil
	}

	return nil, domainerror.NewInterchangeError(
		domainerror.ErrCodeUnsupportedExportFormat,
		"export format must be json or csv",
		domainerror.ErrUnsupportedExportFormat,
	)
}
