package dto

// SuggestCategoryRequest represents the request body for a category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
	Kind        string `json:"kind" binding:"required,oneof=expense income"`
}

// SuggestCategoryResponse represents the suggested category type.
type SuggestCategoryResponse struct {
	Type       CategoryTypeResponse `json:"type"`
	Confidence float64              `json:"confidence"`
	Reasoning  string               `json:"reasoning,omitempty"`
}
