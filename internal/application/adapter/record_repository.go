// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
)

// RecordRepository defines the interface for financial record persistence
// operations. Expenses and incomes live in separate tables; every operation
// takes the record kind to select the backing table.
type RecordRepository interface {
	// Create creates a new financial record.
	Create(ctx context.Context, record *entity.FinancialRecord) error

	// FindByID retrieves a record of the given kind by its ID.
	FindByID(ctx context.Context, kind entity.RecordKind, id uuid.UUID) (*entity.FinancialRecord, error)

	// FindByUser retrieves all records of the given kind for a user, with
	// their category types resolved where the type still exists.
	FindByUser(ctx context.Context, kind entity.RecordKind, userID uuid.UUID) ([]*entity.RecordWithType, error)

	// Update updates an existing record.
	Update(ctx context.Context, record *entity.FinancialRecord) error

	// Delete removes a record of the given kind.
	Delete(ctx context.Context, kind entity.RecordKind, id uuid.UUID) error
}
