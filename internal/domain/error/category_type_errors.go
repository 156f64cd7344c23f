// Package error defines domain-specific errors for the FinanceFlow application.
package error

import "errors"

// Category type domain errors.
var (
	// ErrCategoryTypeNotFound is returned when a category type is not found.
	ErrCategoryTypeNotFound = errors.New("category type not found")

	// ErrCategoryTypeNameExists is returned when a type name already exists for the user and kind.
	ErrCategoryTypeNameExists = errors.New("category type name already exists")

	// ErrCategoryTypeNameEmpty is returned when the type name is empty.
	ErrCategoryTypeNameEmpty = errors.New("category type name is empty")
)

// CategoryTypeErrorCode defines error codes for category type errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryTypeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryTypeNotFound   CategoryTypeErrorCode = "CAT-010001"
	ErrCodeCategoryTypeNameExists CategoryTypeErrorCode = "CAT-010002"
	ErrCodeCategoryTypeNameEmpty  CategoryTypeErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryKind    CategoryTypeErrorCode = "CAT-010004"
)

// CategoryTypeError represents a category type error with code and message.
type CategoryTypeError struct {
	Code    CategoryTypeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryTypeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryTypeError) Unwrap() error {
	return e.Err
}

// NewCategoryTypeError creates a new CategoryTypeError with the given code and message.
func NewCategoryTypeError(code CategoryTypeErrorCode, message string, err error) *CategoryTypeError {
	return &CategoryTypeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
