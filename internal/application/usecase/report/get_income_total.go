package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

// GetIncomeTotalInput represents the input for the monthly income total.
type GetIncomeTotalInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetIncomeTotalOutput represents the output of the monthly income total.
type GetIncomeTotalOutput struct {
	Total decimal.Decimal
}

// GetIncomeTotalUseCase computes a user's income total for a month.
// Unlike expenses, incomes only count once received (status = true).
type GetIncomeTotalUseCase struct {
	ledger LedgerRepository
}

// NewGetIncomeTotalUseCase creates a new GetIncomeTotalUseCase instance.
func NewGetIncomeTotalUseCase(ledger LedgerRepository) *GetIncomeTotalUseCase {
	return &GetIncomeTotalUseCase{ledger: ledger}
}

// Execute computes the received income total for the given user and period.
func (uc *GetIncomeTotalUseCase) Execute(ctx context.Context, input GetIncomeTotalInput) (*GetIncomeTotalOutput, error) {
	interval, err := ResolvePeriod(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	received := true
	records, err := uc.ledger.FindRecordsByPeriod(ctx, entity.RecordKindIncome, input.UserID, interval, &received)
	if err != nil {
		return nil, fmt.Errorf("failed to query income records: %w", err)
	}

	return &GetIncomeTotalOutput{
		Total: SumByPeriod(records, input.UserID, interval, &received),
	}, nil
}
