// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a monthly savings target for a user.
// Only the year and month of Date are semantically significant; a user may
// hold at most one goal per calendar month.
type SavingsGoal struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Value      decimal.Decimal
	Percentage float64
	Achieved   bool
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(userID uuid.UUID, value decimal.Decimal, percentage float64, date time.Time) *SavingsGoal {
	now := time.Now().UTC()
	return &SavingsGoal{
		ID:         uuid.New(),
		UserID:     userID,
		Value:      value,
		Percentage: percentage,
		Achieved:   false,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// MarkAchieved flags the goal as achieved.
func (g *SavingsGoal) MarkAchieved() {
	g.Achieved = true
	g.UpdatedAt = time.Now().UTC()
}
