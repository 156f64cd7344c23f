// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// CreateGoalInput represents the input for creating a savings goal.
type CreateGoalInput struct {
	UserID     uuid.UUID
	Value      decimal.Decimal
	Percentage float64
	Date       time.Time
}

// CreateGoalOutput represents the output of creating a savings goal.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation. A user may hold at most
// one goal per calendar month; the uniqueness check is a read-before-write.
type CreateGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.SavingsGoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the savings goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !input.Value.IsPositive() {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidSavingsGoalValue,
			"goal value must be greater than zero",
			domainerror.ErrInvalidSavingsGoalValue,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidSavingsGoalDate,
			"goal date is required",
			domainerror.ErrInvalidSavingsGoalDate,
		)
	}

	interval, err := report.ResolvePeriod(input.Date.Year(), int(input.Date.Month()))
	if err != nil {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidSavingsGoalDate,
			"goal date does not resolve to a month",
			err,
		)
	}

	existing, err := uc.goalRepo.FindByUserAndMonth(ctx, input.UserID, interval)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing goal: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeSavingsGoalMonthTaken,
			"a savings goal already exists for this month",
			domainerror.ErrSavingsGoalMonthTaken,
		)
	}

	goal := entity.NewSavingsGoal(input.UserID, input.Value, input.Percentage, input.Date)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
