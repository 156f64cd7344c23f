package dto

import (
	"time"

	"github.com/financeflow/backend/internal/domain/entity"
)

// CreateCategoryTypeRequest represents the request body for creating a category type.
type CreateCategoryTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Kind string `json:"kind" binding:"required,oneof=expense income"`
}

// CategoryTypeResponse represents a category type in API responses.
type CategoryTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	IsGlobal  bool      `json:"is_global"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryTypeListResponse represents a list of category types.
type CategoryTypeListResponse struct {
	Types []CategoryTypeResponse `json:"types"`
	Count int                    `json:"count"`
}

// ToCategoryTypeResponse converts a domain CategoryType entity to a CategoryTypeResponse DTO.
func ToCategoryTypeResponse(categoryType *entity.CategoryType) CategoryTypeResponse {
	return CategoryTypeResponse{
		ID:        categoryType.ID.String(),
		Name:      categoryType.Name,
		Kind:      string(categoryType.Kind),
		IsGlobal:  categoryType.IsGlobal,
		CreatedAt: categoryType.CreatedAt,
	}
}

// ToCategoryTypeListResponse converts a slice of category types to a CategoryTypeListResponse.
func ToCategoryTypeListResponse(types []*entity.CategoryType) CategoryTypeListResponse {
	out := make([]CategoryTypeResponse, len(types))
	for i, t := range types {
		out[i] = ToCategoryTypeResponse(t)
	}
	return CategoryTypeListResponse{
		Types: out,
		Count: len(out),
	}
}
