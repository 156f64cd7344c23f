// Package error defines domain-specific errors for the FinanceFlow application.
package error

import "errors"

// Report domain errors. Aggregation itself never fails: empty periods are a
// valid "no activity" state and resolve to zero totals. The only client
// error is an unusable period.
var (
	// ErrInvalidPeriod is returned when the requested month is outside 1-12
	// or the period input cannot be parsed.
	ErrInvalidPeriod = errors.New("invalid period")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod ReportErrorCode = "RPT-010001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
