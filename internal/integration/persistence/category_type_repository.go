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

// categoryTypeRepository implements the adapter.CategoryTypeRepository interface.
type categoryTypeRepository struct {
	db *gorm.DB
}

// NewCategoryTypeRepository creates a new category type repository instance.
func NewCategoryTypeRepository(db *gorm.DB) adapter.CategoryTypeRepository {
	return &categoryTypeRepository{
		db: db,
	}
}

// Create creates a new category type in the database.
func (r *categoryTypeRepository) Create(ctx context.Context, categoryType *entity.CategoryType) error {
	typeModel := model.CategoryTypeFromEntity(categoryType)
	result := r.db.WithContext(ctx).Create(typeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category type by its ID.
func (r *categoryTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryType, error) {
	var typeModel model.CategoryTypeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&typeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryTypeNotFound
		}
		return nil, result.Error
	}
	return typeModel.ToEntity(), nil
}

// FindVisible retrieves the types of the given kind visible to the user:
// global types plus the user's own, globals first.
func (r *categoryTypeRepository) FindVisible(ctx context.Context, userID uuid.UUID, kind entity.RecordKind) ([]*entity.CategoryType, error) {
	var typeModels []model.CategoryTypeModel
	result := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Where("is_global = ? OR user_id = ?", true, userID).
		Order("is_global DESC, name ASC").
		Find(&typeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	types := make([]*entity.CategoryType, len(typeModels))
	for i, tm := range typeModels {
		types[i] = tm.ToEntity()
	}
	return types, nil
}

// ExistsByNameAndUser checks if a non-global type with the given name and
// kind already exists for the user.
func (r *categoryTypeRepository) ExistsByNameAndUser(ctx context.Context, name string, kind entity.RecordKind, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryTypeModel{}).
		Where("name = ? AND kind = ? AND user_id = ? AND is_global = ?", name, string(kind), userID, false).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
