package mock

import (
	"context"
	"fmt"

	"github.com/financeflow/backend/internal/application/adapter"
)

// Suggester is a deterministic stand-in for the AI suggestion provider.
// It always picks the first candidate type.
type Suggester struct {
	Available bool
}

// NewSuggester returns an available suggester.
func NewSuggester() *Suggester {
	return &Suggester{Available: true}
}

// IsAvailable reports the configured availability.
func (s *Suggester) IsAvailable() bool {
	return s.Available
}

// SuggestCategory returns the first candidate with full confidence.
func (s *Suggester) SuggestCategory(_ context.Context, _ string, types []*adapter.CategoryTypeForSuggestion) (*adapter.CategorySuggestion, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("no candidate types")
	}
	return &adapter.CategorySuggestion{
		TypeID:     types[0].ID,
		Confidence: 0.9,
		Reasoning:  "matched first candidate",
	}, nil
}
