package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. Expenses and
// incomes share a shape but live in separate tables; records of the two
// kinds are only ever combined after aggregation.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TypeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Value       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      bool            `gorm:"not null;default:false"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Note        string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Type *CategoryTypeModel `gorm:"foreignKey:TypeID;references:ID"`
	User *UserModel         `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain FinancialRecord entity.
func (m *ExpenseModel) ToEntity() *entity.FinancialRecord {
	return &entity.FinancialRecord{
		ID:          m.ID,
		UserID:      m.UserID,
		TypeID:      m.TypeID,
		Kind:        entity.RecordKindExpense,
		Description: m.Description,
		Value:       m.Value,
		Status:      m.Status,
		Date:        m.Date,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithType converts an ExpenseModel with its Type to a RecordWithType entity.
func (m *ExpenseModel) ToEntityWithType() *entity.RecordWithType {
	result := &entity.RecordWithType{Record: m.ToEntity()}
	if m.Type != nil {
		result.Type = m.Type.ToEntity()
	}
	return result
}

// ExpenseFromEntity creates an ExpenseModel from a domain FinancialRecord entity.
func ExpenseFromEntity(record *entity.FinancialRecord) *ExpenseModel {
	return &ExpenseModel{
		ID:          record.ID,
		UserID:      record.UserID,
		TypeID:      record.TypeID,
		Description: record.Description,
		Value:       record.Value,
		Status:      record.Status,
		Date:        record.Date,
		Note:        record.Note,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TypeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Value       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      bool            `gorm:"not null;default:false"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Note        string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Type *CategoryTypeModel `gorm:"foreignKey:TypeID;references:ID"`
	User *UserModel         `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain FinancialRecord entity.
func (m *IncomeModel) ToEntity() *entity.FinancialRecord {
	return &entity.FinancialRecord{
		ID:          m.ID,
		UserID:      m.UserID,
		TypeID:      m.TypeID,
		Kind:        entity.RecordKindIncome,
		Description: m.Description,
		Value:       m.Value,
		Status:      m.Status,
		Date:        m.Date,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithType converts an IncomeModel with its Type to a RecordWithType entity.
func (m *IncomeModel) ToEntityWithType() *entity.RecordWithType {
	result := &entity.RecordWithType{Record: m.ToEntity()}
	if m.Type != nil {
		result.Type = m.Type.ToEntity()
	}
	return result
}

// IncomeFromEntity creates an IncomeModel from a domain FinancialRecord entity.
func IncomeFromEntity(record *entity.FinancialRecord) *IncomeModel {
	return &IncomeModel{
		ID:          record.ID,
		UserID:      record.UserID,
		TypeID:      record.TypeID,
		Description: record.Description,
		Value:       record.Value,
		Status:      record.Status,
		Date:        record.Date,
		Note:        record.Note,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
