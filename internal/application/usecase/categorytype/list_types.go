package categorytype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// ListTypesInput represents the input for listing visible category types.
type ListTypesInput struct {
	UserID uuid.UUID
	Kind   entity.RecordKind
}

// ListTypesOutput represents the output of listing visible category types.
type ListTypesOutput struct {
	Types []*entity.CategoryType
}

// ListTypesUseCase handles listing the category types visible to a user.
type ListTypesUseCase struct {
	typeRepo adapter.CategoryTypeRepository
}

// NewListTypesUseCase creates a new ListTypesUseCase instance.
func NewListTypesUseCase(typeRepo adapter.CategoryTypeRepository) *ListTypesUseCase {
	return &ListTypesUseCase{typeRepo: typeRepo}
}

// Execute lists the global types of the given kind plus the user's own.
func (uc *ListTypesUseCase) Execute(ctx context.Context, input ListTypesInput) (*ListTypesOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewCategoryTypeError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category type kind must be expense or income",
			domainerror.ErrInvalidRecordKind,
		)
	}

	types, err := uc.typeRepo.FindVisible(ctx, input.UserID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list category types: %w", err)
	}

	return &ListTypesOutput{Types: types}, nil
}
