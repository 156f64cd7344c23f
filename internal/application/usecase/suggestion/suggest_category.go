// Package suggestion contains the AI category suggestion use case.
package suggestion

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for suggesting a category type.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	Kind        entity.RecordKind
	Description string
}

// SuggestCategoryOutput represents the output of suggesting a category type.
type SuggestCategoryOutput struct {
	Type       *entity.CategoryType
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase asks the suggestion provider to pick the best
// matching category type for a free-text record description.
type SuggestCategoryUseCase struct {
	typeRepo          adapter.CategoryTypeRepository
	suggestionService adapter.SuggestionService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	typeRepo adapter.CategoryTypeRepository,
	suggestionService adapter.SuggestionService,
) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		typeRepo:          typeRepo,
		suggestionService: suggestionService,
	}
}

// Execute performs the suggestion. Candidates are the types visible to the
// user for the given kind; the provider only ever sees type names, never
// record values or other user data.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			nil,
		)
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordKind,
			"record kind must be expense or income",
			domainerror.ErrInvalidRecordKind,
		)
	}

	if !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"suggestion service is not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	types, err := uc.typeRepo.FindVisible(ctx, input.UserID, input.Kind)
	if err != nil {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionFailed,
			"failed to load category types",
			err,
		)
	}
	if len(types) == 0 {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeNoTypesToSuggest,
			"no category types available for suggestion",
			domainerror.ErrNoTypesToSuggest,
		)
	}

	candidates := make([]*adapter.CategoryTypeForSuggestion, 0, len(types))
	byID := make(map[uuid.UUID]*entity.CategoryType, len(types))
	for _, t := range types {
		candidates = append(candidates, &adapter.CategoryTypeForSuggestion{ID: t.ID, Name: t.Name})
		byID[t.ID] = t
	}

	result, err := uc.suggestionService.SuggestCategory(ctx, description, candidates)
	if err != nil {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionFailed,
			"suggestion request failed",
			err,
		)
	}

	suggested, ok := byID[result.TypeID]
	if !ok {
		// The provider picked an ID outside the candidate set.
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionFailed,
			"provider returned an unknown category type",
			domainerror.ErrSuggestionFailed,
		)
	}

	return &SuggestCategoryOutput{
		Type:       suggested,
		Confidence: result.Confidence,
		Reasoning:  result.Reasoning,
	}, nil
}
