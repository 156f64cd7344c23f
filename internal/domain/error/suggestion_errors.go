// Package error defines domain-specific errors for the FinanceFlow application.
package error

import "errors"

// Category suggestion domain errors.
var (
	// ErrSuggestionUnavailable is returned when the suggestion service is not configured.
	ErrSuggestionUnavailable = errors.New("suggestion service unavailable")

	// ErrSuggestionFailed is returned when the suggestion provider returns an error.
	ErrSuggestionFailed = errors.New("suggestion request failed")

	// ErrNoTypesToSuggest is returned when the user has no visible category types.
	ErrNoTypesToSuggest = errors.New("no category types available for suggestion")
)

// SuggestionErrorCode defines error codes for suggestion errors.
// Format: SUG-XXYYYY where XX is category and YYYY is specific error.
type SuggestionErrorCode string

const (
	ErrCodeSuggestionUnavailable SuggestionErrorCode = "SUG-010001"
	ErrCodeSuggestionFailed      SuggestionErrorCode = "SUG-010002"
	ErrCodeNoTypesToSuggest      SuggestionErrorCode = "SUG-010003"
	ErrCodeMissingDescription    SuggestionErrorCode = "SUG-010004"
)

// SuggestionError represents a suggestion error with code and message.
type SuggestionError struct {
	Code    SuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// NewSuggestionError creates a new SuggestionError with the given code and message.
func NewSuggestionError(code SuggestionErrorCode, message string, err error) *SuggestionError {
	return &SuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
