package savingsgoal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for patching a savings goal.
// Nil fields are left unchanged.
type UpdateGoalInput struct {
	UserID     uuid.UUID
	GoalID     uuid.UUID
	Value      *decimal.Decimal
	Percentage *float64
	Achieved   *bool
	Date       *time.Time
}

// UpdateGoalOutput represents the output of patching a savings goal.
type UpdateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateGoalUseCase handles savings goal updates. When a goal transitions to
// achieved, a congratulation email is queued for the owner.
type UpdateGoalUseCase struct {
	goalRepo     adapter.SavingsGoalRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(
	goalRepo adapter.SavingsGoalRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:     goalRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute applies the patch, enforcing ownership and month uniqueness.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.Value != nil {
		if !input.Value.IsPositive() {
			return nil, domainerror.NewSavingsGoalError(
				domainerror.ErrCodeInvalidSavingsGoalValue,
				"goal value must be greater than zero",
				domainerror.ErrInvalidSavingsGoalValue,
			)
		}
		goal.Value = *input.Value
	}

	if input.Date != nil && !sameMonth(goal.Date, *input.Date) {
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
		if existing != nil && existing.ID != goal.ID {
			return nil, domainerror.NewSavingsGoalError(
				domainerror.ErrCodeSavingsGoalMonthTaken,
				"a savings goal already exists for this month",
				domainerror.ErrSavingsGoalMonthTaken,
			)
		}
		goal.Date = *input.Date
	}

	if input.Percentage != nil {
		goal.Percentage = *input.Percentage
	}

	justAchieved := false
	if input.Achieved != nil {
		if *input.Achieved && !goal.Achieved {
			goal.MarkAchieved()
			justAchieved = true
		} else {
			goal.Achieved = *input.Achieved
		}
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	if justAchieved {
		uc.notifyAchievement(ctx, goal)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

// notifyAchievement queues the congratulation email. Failures are logged,
// not surfaced; the goal update itself already succeeded.
func (uc *UpdateGoalUseCase) notifyAchievement(ctx context.Context, goal *entity.SavingsGoal) {
	user, err := uc.userRepo.FindByID(ctx, goal.UserID)
	if err != nil {
		slog.Warn("failed to load user for goal achievement email",
			"user_id", goal.UserID, "error", err)
		return
	}

	err = uc.emailService.QueueGoalAchievedEmail(ctx, adapter.QueueGoalAchievedInput{
		UserEmail: user.Email,
		UserName:  user.Name,
		GoalValue: goal.Value.StringFixed(2),
		Month:     goal.Date.Format("January 2006"),
	})
	if err != nil {
		slog.Warn("failed to queue goal achievement email",
			"user_id", goal.UserID, "error", err)
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
