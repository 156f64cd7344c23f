package savingsgoal

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single savings goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of fetching a single savings goal.
type GetGoalOutput struct {
	Goal *entity.SavingsGoal
}

// GetGoalUseCase handles single savings goal retrieval.
type GetGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.SavingsGoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute retrieves the goal, enforcing ownership.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeSavingsGoalNotFound,
			"savings goal not found",
			domainerror.ErrSavingsGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeNotSavingsGoalOwner,
			"savings goal does not belong to user",
			domainerror.ErrNotSavingsGoalOwner,
		)
	}

	return &GetGoalOutput{Goal: goal}, nil
}
