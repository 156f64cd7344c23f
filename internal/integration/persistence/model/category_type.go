package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
)

// CategoryTypeModel represents the category_types table in the database.
// Expense and income types share the table, discriminated by Kind.
type CategoryTypeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Kind      string     `gorm:"type:varchar(10);not null;index"`
	IsGlobal  bool       `gorm:"default:false;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CategoryTypeModel.
func (CategoryTypeModel) TableName() string {
	return "category_types"
}

// ToEntity converts a CategoryTypeModel to a domain CategoryType entity.
func (m *CategoryTypeModel) ToEntity() *entity.CategoryType {
	return &entity.CategoryType{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      entity.RecordKind(m.Kind),
		IsGlobal:  m.IsGlobal,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryTypeFromEntity creates a CategoryTypeModel from a domain CategoryType entity.
func CategoryTypeFromEntity(categoryType *entity.CategoryType) *CategoryTypeModel {
	return &CategoryTypeModel{
		ID:        categoryType.ID,
		Name:      categoryType.Name,
		Kind:      string(categoryType.Kind),
		IsGlobal:  categoryType.IsGlobal,
		UserID:    categoryType.UserID,
		CreatedAt: categoryType.CreatedAt,
		UpdatedAt: categoryType.UpdatedAt,
	}
}
