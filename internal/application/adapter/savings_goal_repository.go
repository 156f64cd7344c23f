// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/domain/valueobject"
)

// SavingsGoalRepository defines the interface for savings goal persistence operations.
type SavingsGoalRepository interface {
	// Create creates a new savings goal.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// FindByID retrieves a savings goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindByUser retrieves all savings goals for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)

	// FindByUserAndMonth retrieves the user's goal whose date falls inside
	// the given month interval, or nil when none exists.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, interval valueobject.PeriodInterval) (*entity.SavingsGoal, error)

	// Update updates an existing savings goal.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete removes a savings goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
