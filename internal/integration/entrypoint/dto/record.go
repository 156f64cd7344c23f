package dto

import (
	"time"

	"github.com/financeflow/backend/internal/domain/entity"
)

// CreateRecordRequest represents the request body for creating a record.
type CreateRecordRequest struct {
	Description string    `json:"description" binding:"required,min=1,max=255"`
	Value       float64   `json:"value" binding:"required,gt=0"`
	TypeID      string    `json:"type_id" binding:"required,uuid"`
	Status      bool      `json:"status"`
	Date        time.Time `json:"date" binding:"required"`
	Note        string    `json:"note" binding:"omitempty,max=1000"`
}

// UpdateRecordRequest represents the request body for patching a record.
// Omitted fields are left unchanged.
type UpdateRecordRequest struct {
	Description *string    `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Value       *float64   `json:"value,omitempty" binding:"omitempty,gt=0"`
	TypeID      *string    `json:"type_id,omitempty" binding:"omitempty,uuid"`
	Status      *bool      `json:"status,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Note        *string    `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// RecordResponse represents a financial record in API responses.
type RecordResponse struct {
	ID          string                `json:"id"`
	Kind        string                `json:"kind"`
	Description string                `json:"description"`
	Value       string                `json:"value"`
	TypeID      string                `json:"type_id"`
	Type        *CategoryTypeResponse `json:"type,omitempty"`
	Status      bool                  `json:"status"`
	Date        time.Time             `json:"date"`
	Note        string                `json:"note,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// RecordListResponse represents a list of financial records.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Count   int              `json:"count"`
}

// ToRecordResponse converts a domain FinancialRecord entity to a RecordResponse DTO.
func ToRecordResponse(record *entity.FinancialRecord) RecordResponse {
	return RecordResponse{
		ID:          record.ID.String(),
		Kind:        string(record.Kind),
		Description: record.Description,
		Value:       record.Value.String(),
		TypeID:      record.TypeID.String(),
		Status:      record.Status,
		Date:        record.Date,
		Note:        record.Note,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// ToRecordWithTypeResponse converts a RecordWithType to a RecordResponse DTO
// with the category type resolved when it still exists.
func ToRecordWithTypeResponse(record *entity.RecordWithType) RecordResponse {
	resp := ToRecordResponse(record.Record)
	if record.Type != nil {
		typeResp := ToCategoryTypeResponse(record.Type)
		resp.Type = &typeResp
	}
	return resp
}

// ToRecordListResponse converts a slice of RecordWithType to a RecordListResponse.
func ToRecordListResponse(records []*entity.RecordWithType) RecordListResponse {
	out := make([]RecordResponse, len(records))
	for i, r := range records {
		out[i] = ToRecordWithTypeResponse(r)
	}
	return RecordListResponse{
		Records: out,
		Count:   len(out),
	}
}
