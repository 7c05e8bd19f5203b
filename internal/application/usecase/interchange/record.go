// Package interchange implements the JSON/CSV serialization and parsing engine
// used for transaction backup and restore.
package interchange

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Record is the interchange wire shape of a transaction. Exported files are
// arrays of this shape; imports are parsed into it before validation. The ID
// of a freshly parsed record is provisional and is discarded when the store
// assigns a durable one.
type Record struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	UserID      string          `json:"userId,omitempty"`
}

// RecordFromEntity converts a stored transaction to its interchange shape.
func RecordFromEntity(txn *entity.Transaction) Record {
	createdAt := txn.CreatedAt
	return Record{
		ID:          txn.ID.String(),
		Type:        string(txn.Type),
		Description: txn.Description,
		Amount:      txn.Amount,
		Category:    txn.Category,
		Date:        txn.Date,
		CreatedAt:   &createdAt,
		UserID:      txn.UserID.String(),
	}
}

// ToEntity converts a parsed record into a transaction owned by the given
// user. The provisional record ID is discarded; the store works with the
// durable uuid assigned here.
func (r Record) ToEntity(userID uuid.UUID) *entity.Transaction {
	txn := entity.NewTransaction(
		userID,
		entity.TransactionType(r.Type),
		r.Description,
		r.Amount,
		r.Category,
		r.Date,
	)
	if r.CreatedAt != nil {
		txn.CreatedAt = r.CreatedAt.UTC()
	}
	return txn
}

// sanitizeField strips literal '&' characters and trims surrounding
// whitespace. The sanitization is intentionally narrow and is applied
// uniformly to the description and category of every imported record,
// regardless of source format.
func sanitizeField(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, "&", ""))
}

// GenerateLocalID synthesizes a client-side unique id from the current time
// plus a random base-36 suffix. It is used only for locally-originated records
// before a durable id is assigned upstream.
func GenerateLocalID() string {
	suffix := strconv.FormatInt(rand.Int63(), 36)
	if len(suffix) > 9 {
		suffix = suffix[:9]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix
}
