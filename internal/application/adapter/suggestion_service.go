// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CategoryTypeForSuggestion represents category type data offered to the suggester.
type CategoryTypeForSuggestion struct {
	ID   uuid.UUID
	Name string
}

// CategorySuggestion represents the suggester's pick for a record description.
type CategorySuggestion struct {
	TypeID     uuid.UUID
	Confidence float64
	Reasoning  string
}

// SuggestionService defines the interface for AI-backed category suggestions.
type SuggestionService interface {
	// SuggestCategory picks the best matching category type for a free-text
	// record description from the given candidates.
	SuggestCategory(ctx context.Context, description string, types []*CategoryTypeForSuggestion) (*CategorySuggestion, error)

	// IsAvailable checks if the suggestion service is configured and usable.
	IsAvailable() bool
}
