// Package report contains the financial aggregation use cases: monthly
// totals, net balance and per-category reports.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/domain/valueobject"
)

// LedgerRepository defines the read-only store contract the aggregation
// engine consumes. Implementations must propagate store failures unchanged;
// the engine never masks them and never retries.
type LedgerRepository interface {
	// FindRecordsByPeriod returns the user's records of the given kind whose
	// date falls inside the half-open interval. When statusFilter is non-nil
	// only records with a matching status are returned.
	FindRecordsByPeriod(
		ctx context.Context,
		kind entity.RecordKind,
		ownerID uuid.UUID,
		interval valueobject.PeriodInterval,
		statusFilter *bool,
	) ([]*entity.FinancialRecord, error)

	// FindCategoryTypesByIDs returns the category types matching the given
	// IDs. Missing IDs are simply absent from the result, never an error.
	FindCategoryTypesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.CategoryType, error)
}
