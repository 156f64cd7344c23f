package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

// GetExpenseTotalInput represents the input for the monthly expense total.
type GetExpenseTotalInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetExpenseTotalOutput represents the output of the monthly expense total.
type GetExpenseTotalOutput struct {
	Total decimal.Decimal
}

// GetExpenseTotalUseCase computes a user's expense total for a month.
// Expenses count as soon as they are recorded, regardless of the paid flag.
type GetExpenseTotalUseCase struct {
	ledger LedgerRepository
}

// NewGetExpenseTotalUseCase creates a new GetExpenseTotalUseCase instance.
func NewGetExpenseTotalUseCase(ledger LedgerRepository) *GetExpenseTotalUseCase {
	return &GetExpenseTotalUseCase{ledger: ledger}
}

// Execute computes the expense total for the given user and period.
func (uc *GetExpenseTotalUseCase) Execute(ctx context.Context, input GetExpenseTotalInput) (*GetExpenseTotalOutput, error) {
	interval, err := ResolvePeriod(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	records, err := uc.ledger.FindRecordsByPeriod(ctx, entity.RecordKindExpense, input.UserID, interval, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense records: %w", err)
	}

	return &GetExpenseTotalOutput{
		Total: SumByPeriod(records, input.UserID, interval, nil),
	}, nil
}
