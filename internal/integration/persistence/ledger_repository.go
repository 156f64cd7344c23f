package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/domain/valueobject"
	"github.com/financeflow/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the report.LedgerRepository interface. It is
// the read path of the aggregation engine: per-period record windows and
// category type lookups, nothing else.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) report.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// FindRecordsByPeriod returns the user's records of the given kind inside
// the half-open interval [Start, End), optionally filtered by status.
func (r *ledgerRepository) FindRecordsByPeriod(
	ctx context.Context,
	kind entity.RecordKind,
	ownerID uuid.UUID,
	interval valueobject.PeriodInterval,
	statusFilter *bool,
) ([]*entity.FinancialRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where("date >= ? AND date < ?", interval.Start, interval.End)
	if statusFilter != nil {
		query = query.Where("status = ?", *statusFilter)
	}

	switch kind {
	case entity.RecordKindExpense:
		var expenseModels []model.ExpenseModel
		if result := query.Order("date ASC, created_at ASC").Find(&expenseModels); result.Error != nil {
			return nil, result.Error
		}
		records := make([]*entity.FinancialRecord, len(expenseModels))
		for i, em := range expenseModels {
			records[i] = em.ToEntity()
		}
		return records, nil
	case entity.RecordKindIncome:
		var incomeModels []model.IncomeModel
		if result := query.Order("date ASC, created_at ASC").Find(&incomeModels); result.Error != nil {
			return nil, result.Error
		}
		records := make([]*entity.FinancialRecord, len(incomeModels))
		for i, im := range incomeModels {
			records[i] = im.ToEntity()
		}
		return records, nil
	default:
		return nil, domainerror.ErrInvalidRecordKind
	}
}

// FindCategoryTypesByIDs returns the category types matching the given IDs.
// IDs that no longer resolve are absent from the result.
func (r *ledgerRepository) FindCategoryTypesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.CategoryType, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var typeModels []model.CategoryTypeModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&typeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	types := make([]*entity.CategoryType, len(typeModels))
	for i, tm := range typeModels {
		types[i] = tm.ToEntity()
	}
	return types, nil
}
