// Package record contains expense and income record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// ListRecordsInput represents the input for listing a user's records.
type ListRecordsInput struct {
	UserID uuid.UUID
	Kind   entity.RecordKind
}

// ListRecordsOutput represents the output of listing a user's records.
type ListRecordsOutput struct {
	Records []*entity.RecordWithType
}

// ListRecordsUseCase handles listing financial records with their types.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{recordRepo: recordRepo}
}

// Execute lists the user's records of the given kind.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordKind,
			"record kind must be expense or income",
			domainerror.ErrInvalidRecordKind,
		)
	}

	records, err := uc.recordRepo.FindByUser(ctx, input.Kind, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", input.Kind, err)
	}

	return &ListRecordsOutput{Records: records}, nil
}
