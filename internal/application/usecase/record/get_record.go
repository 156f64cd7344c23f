// Package record contains expense and income record use cases.
package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// GetRecordInput represents the input for fetching a single record.
type GetRecordInput struct {
	UserID   uuid.UUID
	Kind     entity.RecordKind
	RecordID uuid.UUID
}

// GetRecordOutput represents the output of fetching a single record.
type GetRecordOutput struct {
	Record *entity.FinancialRecord
}

// GetRecordUseCase handles single record retrieval.
type GetRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetRecordUseCase creates a new GetRecordUseCase instance.
func NewGetRecordUseCase(recordRepo adapter.RecordRepository) *GetRecordUseCase {
	return &GetRecordUseCase{recordRepo: recordRepo}
}

// Execute retrieves the record, enforcing ownership.
func (uc *GetRecordUseCase) Execute(ctx context.Context, input GetRecordInput) (*GetRecordOutput, error) {
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

	return &GetRecordOutput{Record: record}, nil
}
