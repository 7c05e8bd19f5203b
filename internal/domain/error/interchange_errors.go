// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Interchange (import/export) domain errors.
var (
	// ErrMalformedJSONImport is returned when a JSON import file cannot be parsed.
	// JSON imports are all-or-nothing: nothing is imported on parse failure.
	ErrMalformedJSONImport = errors.New("malformed JSON import file")

	// ErrNoImportableRows is returned when an import yields zero valid records.
	ErrNoImportableRows = errors.New("no valid transactions found in the file")

	// ErrUnsupportedImportFormat is returned for formats other than json or csv.
	ErrUnsupportedImportFormat = errors.New("unsupported import format")

	// ErrUnsupportedExportFormat is returned for export formats other than json or csv.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

// InterchangeErrorCode defines error codes for import/export errors.
// Format: ICX-XXYYYY where XX is category and YYYY is specific error.
type InterchangeErrorCode string

const (
	// Import errors (01XXXX)
	ErrCodeMalformedJSONImport     InterchangeErrorCode = "ICX-010001"
	ErrCodeNoImportableRows        InterchangeErrorCode = "ICX-010002"
	ErrCodeUnsupportedImportFormat InterchangeErrorCode = "ICX-010003"

	// Export errors (02XXXX)
	ErrCodeUnsupportedExportFormat InterchangeErrorCode = "ICX-020001"
)

// InterchangeError represents an import/export error with code and message.
type InterchangeError struct {
	Code    InterchangeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InterchangeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InterchangeError) Unwrap() error {
	return e.Err
}

// NewInterchangeError creates a new InterchangeError with the given code and message.
func NewInterchangeError(code InterchangeErrorCode, message string, err error) *InterchangeError {
	return &InterchangeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
