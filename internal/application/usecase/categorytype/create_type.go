// Package categorytype contains category type use cases.
package categorytype

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// CreateTypeInput represents the input for creating a category type.
type CreateTypeInput struct {
	UserID uuid.UUID
	Name   string
	Kind   entity.RecordKind
}

// CreateTypeOutput represents the output of creating a category type.
type CreateTypeOutput struct {
	CategoryType *entity.CategoryType
}

// CreateTypeUseCase handles user-scoped category type creation.
type CreateTypeUseCase struct {
	typeRepo adapter.CategoryTypeRepository
}

// NewCreateTypeUseCase creates a new CreateTypeUseCase instance.
func NewCreateTypeUseCase(typeRepo adapter.CategoryTypeRepository) *CreateTypeUseCase {
	return &CreateTypeUseCase{typeRepo: typeRepo}
}

// Execute performs the category type creation.
func (uc *CreateTypeUseCase) Execute(ctx context.Context, input CreateTypeInput) (*CreateTypeOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryTypeError(
			domainerror.ErrCodeCategoryTypeNameEmpty,
			"category type name is required",
			domainerror.ErrCategoryTypeNameEmpty,
		)
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewCategoryTypeError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category type kind must be expense or income",
			domainerror.ErrInvalidRecordKind,
		)
	}

	exists, err := uc.typeRepo.ExistsByNameAndUser(ctx, name, input.Kind, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category type name: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryTypeError(
			domainerror.ErrCodeCategoryTypeNameExists,
			"category type name already exists",
			domainerror.ErrCategoryTypeNameExists,
		)
	}

	categoryType := entity.NewCategoryType(name, input.Kind, input.UserID)

	if err := uc.typeRepo.Create(ctx, categoryType); err != nil {
		return nil, fmt.Errorf("failed to create category type: %w", err)
	}

	return &CreateTypeOutput{CategoryType: categoryType}, nil
}
