package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// DeleteRecordInput represents the input for deleting a record.
type DeleteRecordInput struct {
	UserID   uuid.UUID
	Kind     entity.RecordKind
	RecordID uuid.UUID
}

// DeleteRecordUseCase handles financial record deletion.
type DeleteRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(recordRepo adapter.RecordRepository) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute deletes the record after verifying ownership.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	record, err := uc.recordRepo.FindByID(ctx, input.Kind, input.RecordID)
	if err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"financial record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if record.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeNotRecordOwner,
			"record does not belong to user",
			domainerror.ErrNotRecordOwner,
		)
	}

	if err := uc.recordRepo.Delete(ctx, input.Kind, input.RecordID); err != nil {
		return fmt.Errorf("failed to delete %s record: %w", input.Kind, err)
	}

	return nil
}
