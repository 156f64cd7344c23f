package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetNetBalanceInput represents the input for the monthly net balance.
type GetNetBalanceInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetNetBalanceOutput represents the output of the monthly net balance.
type GetNetBalanceOutput struct {
	Total decimal.Decimal
	Month int
	Year  int
}

// GetNetBalanceUseCase combines the income and expense totals of a month
// into a signed net balance. This is the only point where the two record
// kinds meet.
type GetNetBalanceUseCase struct {
	incomeTotal  *GetIncomeTotalUseCase
	expenseTotal *GetExpenseTotalUseCase
}

// NewGetNetBalanceUseCase creates a new GetNetBalanceUseCase instance.
func NewGetNetBalanceUseCase(incomeTotal *GetIncomeTotalUseCase, expenseTotal *GetExpenseTotalUseCase) *GetNetBalanceUseCase {
	return &GetNetBalanceUseCase{
		incomeTotal:  incomeTotal,
		expenseTotal: expenseTotal,
	}
}

// Execute computes the net balance for the given user and period.
func (uc *GetNetBalanceUseCase) Execute(ctx context.Context, input GetNetBalanceInput) (*GetNetBalanceOutput, error) {
	income, err := uc.incomeTotal.Execute(ctx, GetIncomeTotalInput(input))
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseTotal.Execute(ctx, GetExpenseTotalInput(input))
	if err != nil {
		return nil, err
	}

	return &GetNetBalanceOutput{
		Total: ComputeBalance(income.Total, expenses.Total),
		Month: input.Month,
		Year:  input.Year,
	}, nil
}
