package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/domain/valueobject"
)

// GetCategoryReportInput represents the input for the per-category report.
type GetCategoryReportInput struct {
	UserID uuid.UUID
	Kind   entity.RecordKind
	Year   int
	Month  int
}

// GetCategoryReportOutput represents the output of the per-category report.
type GetCategoryReportOutput struct {
	Lines []valueobject.CategoryReportLine
}

// GetCategoryReportUseCase groups a month's records by category type and
// sums per group. Lines whose type was deleted keep their total with a nil
// type; the report degrades gracefully instead of failing.
type GetCategoryReportUseCase struct {
	ledger LedgerRepository
}

// NewGetCategoryReportUseCase creates a new GetCategoryReportUseCase instance.
func NewGetCategoryReportUseCase(ledger LedgerRepository) *GetCategoryReportUseCase {
	return &GetCategoryReportUseCase{ledger: ledger}
}

// Execute computes the category report for the given user, kind and period.
// Income reports only count received records, matching the income total.
func (uc *GetCategoryReportUseCase) Execute(ctx context.Context, input GetCategoryReportInput) (*GetCategoryReportOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordKind,
			"record kind must be expense or income",
			domainerror.ErrInvalidRecordKind,
		)
	}

	interval, err := ResolvePeriod(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	var statusFilter *bool
	if input.Kind == entity.RecordKindIncome {
		received := true
		statusFilter = &received
	}

	records, err := uc.ledger.FindRecordsByPeriod(ctx, input.Kind, input.UserID, interval, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s records: %w", input.Kind, err)
	}

	sums := GroupSumByCategory(records, input.UserID, interval, statusFilter)
	if len(sums) == 0 {
		return &GetCategoryReportOutput{Lines: []valueobject.CategoryReportLine{}}, nil
	}

	typeIDs := make([]uuid.UUID, len(sums))
	for i, sum := range sums {
		typeIDs[i] = sum.TypeID
	}

	types, err := uc.ledger.FindCategoryTypesByIDs(ctx, typeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query category types: %w", err)
	}

	lookup := make(map[uuid.UUID]*entity.CategoryType, len(types))
	for _, categoryType := range types {
		lookup[categoryType.ID] = categoryType
	}

	return &GetCategoryReportOutput{
		Lines: JoinCategories(sums, lookup),
	}, nil
}
