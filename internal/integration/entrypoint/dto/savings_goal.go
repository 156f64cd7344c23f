package dto

import (
	"time"

	"github.com/financeflow/backend/internal/domain/entity"
)

// CreateSavingsGoalRequest represents the request body for creating a savings goal.
type CreateSavingsGoalRequest struct {
	Value      float64   `json:"value" binding:"required,gt=0"`
	Percentage float64   `json:"percentage" binding:"omitempty,gte=0,lte=100"`
	Date       time.Time `json:"date" binding:"required"`
}

// UpdateSavingsGoalRequest represents the request body for patching a savings goal.
// Omitted fields are left unchanged.
type UpdateSavingsGoalRequest struct {
	Value      *float64   `json:"value,omitempty" binding:"omitempty,gt=0"`
	Percentage *float64   `json:"percentage,omitempty" binding:"omitempty,gte=0,lte=100"`
	Achieved   *bool      `json:"achieved,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
}

// SavingsGoalResponse represents a savings goal in API responses.
type SavingsGoalResponse struct {
	ID         string    `json:"id"`
	Value      string    `json:"value"`
	Percentage float64   `json:"percentage"`
	Achieved   bool      `json:"achieved"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SavingsGoalListResponse represents a list of savings goals.
type SavingsGoalListResponse struct {
	Goals []SavingsGoalResponse `json:"goals"`
	Count int                   `json:"count"`
}

// ToSavingsGoalResponse converts a domain SavingsGoal entity to a SavingsGoalResponse DTO.
func ToSavingsGoalResponse(goal *entity.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:         goal.ID.String(),
		Value:      goal.Value.String(),
		Percentage: goal.Percentage,
		Achieved:   goal.Achieved,
		Date:       goal.Date,
		CreatedAt:  goal.CreatedAt,
		UpdatedAt:  goal.UpdatedAt,
	}
}

// ToSavingsGoalListResponse converts a slice of savings goals to a SavingsGoalListResponse.
func ToSavingsGoalListResponse(goals []*entity.SavingsGoal) SavingsGoalListResponse {
	out := make([]SavingsGoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToSavingsGoalResponse(g)
	}
	return SavingsGoalListResponse{
		Goals: out,
		Count: len(out),
	}
}
