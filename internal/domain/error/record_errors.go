// Package error defines domain-specific errors for the FinanceFlow application.
package error

import "errors"

// Financial record domain errors.
var (
	// ErrRecordNotFound is returned when a financial record is not found.
	ErrRecordNotFound = errors.New("financial record not found")

	// ErrInvalidRecordKind is returned when the record kind is not expense or income.
	ErrInvalidRecordKind = errors.New("invalid record kind")

	// ErrInvalidRecordValue is returned when the monetary value is not positive.
	ErrInvalidRecordValue = errors.New("invalid record value")

	// ErrRecordTypeNotVisible is returned when the category type is not visible to the user.
	ErrRecordTypeNotVisible = errors.New("category type not visible to user")

	// ErrNotRecordOwner is returned when a user operates on a record they do not own.
	ErrNotRecordOwner = errors.New("record does not belong to user")
)

// RecordErrorCode defines error codes for financial record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecordNotFound      RecordErrorCode = "REC-010001"
	ErrCodeInvalidRecordKind   RecordErrorCode = "REC-010002"
	ErrCodeInvalidRecordValue  RecordErrorCode = "REC-010003"
	ErrCodeRecordTypeNotVisible RecordErrorCode = "REC-010004"
	ErrCodeNotRecordOwner      RecordErrorCode = "REC-010005"
	ErrCodeMissingRecordFields RecordErrorCode = "REC-010006"
)

// RecordError represents a financial record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
