// Package record contains expense and income record use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// UpdateRecordInput represents the input for patching a record.
// Nil fields are left unchanged.
type UpdateRecordInput struct {
	UserID      uuid.UUID
	Kind        entity.RecordKind
	RecordID    uuid.UUID
	Description *string
	Value       *decimal.Decimal
	TypeID      *uuid.UUID
	Status      *bool
	Date        *time.Time
	Note        *string
}

// UpdateRecordOutput represents the output of patching a record.
type UpdateRecordOutput struct {
	Record *entity.FinancialRecord
}

// UpdateRecordUseCase handles financial record updates.
type UpdateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	typeRepo   adapter.CategoryTypeRepository
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.RecordRepository, typeRepo adapter.CategoryTypeRepository) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
		typeRepo:   typeRepo,
	}
}

// Execute applies the patch, enforcing ownership and type visibility.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.Kind, input.RecordID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"financial record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if record.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNotRecordOwner,
			"record does not belong to user",
			domainerror.ErrNotRecordOwner,
		)
	}

	if input.Value != nil {
		if !input.Value.IsPositive() {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidRecordValue,
				"value must be greater than zero",
				domainerror.ErrInvalidRecordValue,
			)
		}
		record.Value = *input.Value
	}

	if input.TypeID != nil {
		categoryType, err := uc.typeRepo.FindByID(ctx, *input.TypeID)
		if err != nil {
			return nil, domainerror.NewCategoryTypeError(
				domainerror.ErrCodeCategoryTypeNotFound,
				"category type not found",
				domainerror.ErrCategoryTypeNotFound,
			)
		}
		if categoryType.Kind != input.Kind || !categoryType.VisibleTo(input.UserID) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordTypeNotVisible,
				"category type not visible to user",
				domainerror.ErrRecordTypeNotVisible,
			)
		}
		record.TypeID = *input.TypeID
	}

	if input.Description != nil {
		record.Description = *input.Description
	}
	if input.Status != nil {
		record.Status = *input.Status
	}
	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.Note != nil {
		record.Note = *input.Note
	}
	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update %s record: %w", input.Kind, err)
	}

	return &UpdateRecordOutput{Record: record}, nil
}
