package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

// SavingsGoalModel represents the savings_goals table in the database.
type SavingsGoalModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Value      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Percentage float64         `gorm:"type:decimal(5,2);not null;default:0"`
	Achieved   bool            `gorm:"not null;default:false"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the SavingsGoalModel.
func (SavingsGoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalModel to a domain SavingsGoal entity.
func (m *SavingsGoalModel) ToEntity() *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:         m.ID,
		UserID:     m.UserID,
		Value:      m.Value,
		Percentage: m.Percentage,
		Achieved:   m.Achieved,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// SavingsGoalFromEntity creates a SavingsGoalModel from a domain SavingsGoal entity.
func SavingsGoalFromEntity(goal *entity.SavingsGoal) *SavingsGoalModel {
	return &SavingsGoalModel{
		ID:         goal.ID,
		UserID:     goal.UserID,
		Value:      goal.Value,
		Percentage: goal.Percentage,
		Achieved:   goal.Achieved,
		Date:       goal.Date,
		CreatedAt:  goal.CreatedAt,
		UpdatedAt:  goal.UpdatedAt,
	}
}
