// Package error defines domain-specific errors for the FinanceFlow application.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrSavingsGoalNotFound is returned when a savings goal is not found.
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrSavingsGoalMonthTaken is returned when the user already has a goal for the month.
	ErrSavingsGoalMonthTaken = errors.New("a savings goal already exists for this month")

	// ErrInvalidSavingsGoalValue is returned when the target value is not positive.
	ErrInvalidSavingsGoalValue = errors.New("invalid savings goal value")

	// ErrInvalidSavingsGoalDate is returned when the goal date cannot be parsed.
	ErrInvalidSavingsGoalDate = errors.New("invalid savings goal date")

	// ErrNotSavingsGoalOwner is returned when a user operates on a goal they do not own.
	ErrNotSavingsGoalOwner = errors.New("savings goal does not belong to user")
)

// SavingsGoalErrorCode defines error codes for savings goal errors.
// Format: SGL-XXYYYY where XX is category and YYYY is specific error.
type SavingsGoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSavingsGoalNotFound     SavingsGoalErrorCode = "SGL-010001"
	ErrCodeSavingsGoalMonthTaken   SavingsGoalErrorCode = "SGL-010002"
	ErrCodeInvalidSavingsGoalValue SavingsGoalErrorCode = "SGL-010003"
	ErrCodeInvalidSavingsGoalDate  SavingsGoalErrorCode = "SGL-010004"
	ErrCodeNotSavingsGoalOwner     SavingsGoalErrorCode = "SGL-010005"
)

// SavingsGoalError represents a savings goal error with code and message.
type SavingsGoalError struct {
	Code    SavingsGoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsGoalError) Unwrap() error {
	return e.Err
}

// NewSavingsGoalError creates a new SavingsGoalError with the given code and message.
func NewSavingsGoalError(code SavingsGoalErrorCode, message string, err error) *SavingsGoalError {
	return &SavingsGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
