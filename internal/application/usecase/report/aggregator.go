package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/domain/valueobject"
)

// matchesPeriod is the shared aggregation predicate: owner, half-open date
// interval and, when statusFilter is non-nil, the record status. The store
// already filters on these, but the aggregator applies the predicate itself
// so its contracts hold over arbitrary record sets.
func matchesPeriod(record *entity.FinancialRecord, ownerID uuid.UUID, interval valueobject.PeriodInterval, statusFilter *bool) bool {
	if record.UserID != ownerID {
		return false
	}
	if !interval.Contains(record.Date) {
		return false
	}
	if statusFilter != nil && record.Status != *statusFilter {
		return false
	}
	return true
}

// SumByPeriod sums the monetary value of the records matching the owner,
// interval and optional status filter. An empty filtered set is a valid
// "no activity" state and yields zero, never an error.
func SumByPeriod(records []*entity.FinancialRecord, ownerID uuid.UUID, interval valueobject.PeriodInterval, statusFilter *bool) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		if !matchesPeriod(record, ownerID, interval, statusFilter) {
			continue
		}
		total = total.Add(record.Value)
	}
	return total
}

// GroupSumByCategory applies the same filter as SumByPeriod, then groups the
// matching records by category type and sums per group. Each type appears at
// most once, in order of first appearance, and a group's total is always a
// concrete decimal, never null.
func GroupSumByCategory(records []*entity.FinancialRecord, ownerID uuid.UUID, interval valueobject.PeriodInterval, statusFilter *bool) []valueobject.CategorySum {
	totals := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID

	for _, record := range records {
		if !matchesPeriod(record, ownerID, interval, statusFilter) {
			continue
		}
		current, seen := totals[record.TypeID]
		if !seen {
			order = append(order, record.TypeID)
			current = decimal.Zero
		}
		totals[record.TypeID] = current.Add(record.Value)
	}

	sums := make([]valueobject.CategorySum, 0, len(order))
	for _, typeID := range order {
		sums = append(sums, valueobject.CategorySum{TypeID: typeID, Total: totals[typeID]})
	}
	return sums
}

// JoinCategories resolves grouped sums against the category type lookup.
// A sum whose type was deleted keeps its total and carries a nil type; the
// monetary contribution is never dropped. Output order follows the input.
func JoinCategories(sums []valueobject.CategorySum, lookup map[uuid.UUID]*entity.CategoryType) []valueobject.CategoryReportLine {
	lines := make([]valueobject.CategoryReportLine, 0, len(sums))
	for _, sum := range sums {
		lines = append(lines, valueobject.CategoryReportLine{
			Type:  lookup[sum.TypeID],
			Total: sum.Total,
		})
	}
	return lines
}

// ComputeBalance combines an income total and an expense total into the
// signed net balance. Positive is a surplus, negative a deficit, zero a
// break-even month; all three are valid outcomes.
func ComputeBalance(totalIncome, totalExpense decimal.Decimal) decimal.Decimal {
	return totalIncome.Sub(totalExpense)
}
