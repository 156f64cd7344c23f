package savingsgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for deleting a savings goal.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase handles savings goal deletion.
type DeleteGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.SavingsGoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goalRepo: goalRepo}
}

// Execute deletes the goal after verifying ownership.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return domainerror.NewSavingsGoalError(
			domainerror.ErrCodeSavingsGoalNotFound,
			"savings goal not found",
			domainerror.ErrSavingsGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return domainerror.NewSavingsGoalError(
			domainerror.ErrCodeNotSavingsGoalOwner,
			"savings goal does not belong to user",
			domainerror.ErrNotSavingsGoalOwner,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}

	return nil
}
