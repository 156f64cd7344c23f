// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
)

// CategoryTypeRepository defines the interface for category type persistence operations.
type CategoryTypeRepository interface {
	// Create creates a new category type.
	Create(ctx context.Context, categoryType *entity.CategoryType) error

	// FindByID retrieves a category type by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryType, error)

	// FindVisible retrieves the types of the given kind visible to the user:
	// global types plus the user's own.
	FindVisible(ctx context.Context, userID uuid.UUID, kind entity.RecordKind) ([]*entity.CategoryType, error)

	// ExistsByNameAndUser checks if a non-global type with the given name and
	// kind already exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, kind entity.RecordKind, userID uuid.UUID) (bool, error)
}
