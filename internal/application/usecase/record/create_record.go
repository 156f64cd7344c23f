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

// CreateRecordInput represents the input for creating a financial record.
type CreateRecordInput struct {
	UserID      uuid.UUID
	TypeID      uuid.UUID
	Kind        entity.RecordKind
	Description string
	Value       decimal.Decimal
	Status      bool
	Date        time.Time
	Note        string
}

// CreateRecordOutput represents the output of creating a financial record.
type CreateRecordOutput struct {
	Record *entity.FinancialRecord
}

// CreateRecordUseCase handles financial record creation.
type CreateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	typeRepo   adapter.CategoryTypeRepository
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(recordRepo adapter.RecordRepository, typeRepo adapter.CategoryTypeRepository) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
		typeRepo:   typeRepo,
	}
}

// Execute performs the record creation.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordKind,
			"record kind must be expense or income",
			domainerror.ErrInvalidRecordKind,
		)
	}

	if input.Description == "" || input.Date.IsZero() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"description and date are required",
			nil,
		)
	}

	if !input.Value.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordValue,
			"value must be greater than zero",
			domainerror.ErrInvalidRecordValue,
		)
	}

	categoryType, err := uc.typeRepo.FindByID(ctx, input.TypeID)
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

	record := entity.NewFinancialRecord(
		input.UserID,
		input.TypeID,
		input.Kind,
		input.Description,
		input.Value,
		input.Status,
		input.Date,
		input.Note,
	)

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create %s record: %w", input.Kind, err)
	}

	return &CreateRecordOutput{Record: record}, nil
}
