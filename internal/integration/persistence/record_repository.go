package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface on top
// of the separate expenses and incomes tables. The record kind selects the
// table; the two sets never share a query.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new financial record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create creates a new financial record in its kind's table.
func (r *recordRepository) Create(ctx context.Context, record *entity.FinancialRecord) error {
	var result *gorm.DB
	switch record.Kind {
	case entity.RecordKindExpense:
		result = r.db.WithContext(ctx).Create(model.ExpenseFromEntity(record))
	case entity.RecordKindIncome:
		result = r.db.WithContext(ctx).Create(model.IncomeFromEntity(record))
	default:
		return domainerror.ErrInvalidRecordKind
	}
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a record of the given kind by its ID.
func (r *recordRepository) FindByID(ctx context.Context, kind entity.RecordKind, id uuid.UUID) (*entity.FinancialRecord, error) {
	switch kind {
	case entity.RecordKindExpense:
		var expenseModel model.ExpenseModel
		result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
		if result.Error != nil {
			return nil, notFoundOr(result.Error)
		}
		return expenseModel.ToEntity(), nil
	case entity.RecordKindIncome:
		var incomeModel model.IncomeModel
		result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
		if result.Error != nil {
			return nil, notFoundOr(result.Error)
		}
		return incomeModel.ToEntity(), nil
	default:
		return nil, domainerror.ErrInvalidRecordKind
	}
}

// FindByUser retrieves all records of the given kind for a user with their
// category types preloaded.
func (r *recordRepository) FindByUser(ctx context.Context, kind entity.RecordKind, userID uuid.UUID) ([]*entity.RecordWithType, error) {
	switch kind {
	case entity.RecordKindExpense:
		var expenseModels []model.ExpenseModel
		result := r.db.WithContext(ctx).
			Preload("Type").
			Where("user_id = ?", userID).
			Order("date DESC, created_at DESC").
			Find(&expenseModels)
		if result.Error != nil {
			return nil, result.Error
		}
		records := make([]*entity.RecordWithType, len(expenseModels))
		for i, em := range expenseModels {
			records[i] = em.ToEntityWithType()
		}
		return records, nil
	case entity.RecordKindIncome:
		var incomeModels []model.IncomeModel
		result := r.db.WithContext(ctx).
			Preload("Type").
			Where("user_id = ?", userID).
			Order("date DESC, created_at DESC").
			Find(&incomeModels)
		if result.Error != nil {
			return nil, result.Error
		}
		records := make([]*entity.RecordWithType, len(incomeModels))
		for i, im := range incomeModels {
			records[i] = im.ToEntityWithType()
		}
		return records, nil
	default:
		return nil, domainerror.ErrInvalidRecordKind
	}
}

// Update updates an existing record in its kind's table.
func (r *recordRepository) Update(ctx context.Context, record *entity.FinancialRecord) error {
	var result *gorm.DB
	switch record.Kind {
	case entity.RecordKindExpense:
		result = r.db.WithContext(ctx).Save(model.ExpenseFromEntity(record))
	case entity.RecordKindIncome:
		result = r.db.WithContext(ctx).Save(model.IncomeFromEntity(record))
	default:
		return domainerror.ErrInvalidRecordKind
	}
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a record of the given kind from the database.
func (r *recordRepository) Delete(ctx context.Context, kind entity.RecordKind, id uuid.UUID) error {
	var result *gorm.DB
	switch kind {
	case entity.RecordKindExpense:
		result = r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	case entity.RecordKindIncome:
		result = r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	default:
		return domainerror.ErrInvalidRecordKind
	}
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerror.ErrRecordNotFound
	}
	return err
}
