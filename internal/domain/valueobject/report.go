// Package valueobject defines immutable domain value types.
package valueobject

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

// CategorySum is the aggregated value of one category type over a period.
type CategorySum struct {
	TypeID uuid.UUID
	Total  decimal.Decimal
}

// CategoryReportLine pairs an aggregated total with its category type.
// Type is nil when the type no longer exists; the total is kept either way.
type CategoryReportLine struct {
	Type  *entity.CategoryType
	Total decimal.Decimal
}
