package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financeflow/backend/internal/application/usecase/suggestion"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// SuggestionController handles category suggestion requests.
type SuggestionController struct {
	suggestUseCase *suggestion.SuggestCategoryUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(suggestUseCase *suggestion.SuggestCategoryUseCase) *SuggestionController {
	return &SuggestionController{suggestUseCase: suggestUseCase}
}

// Suggest handles POST /suggestions requests.
func (c *SuggestionController) Suggest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), suggestion.SuggestCategoryInput{
		UserID:      userID,
		Kind:        entity.RecordKind(req.Kind),
		Description: req.Description,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Type:       dto.ToCategoryTypeResponse(output.Type),
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}

// handleSuggestionError maps suggestion errors to HTTP responses.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	var suggestionErr *domainerror.SuggestionError
	if errors.As(err, &suggestionErr) {
		status := http.StatusInternalServerError
		switch suggestionErr.Code {
		case domainerror.ErrCodeMissingDescription:
			status = http.StatusBadRequest
		case domainerror.ErrCodeSuggestionUnavailable:
			status = http.StatusServiceUnavailable
		case domainerror.ErrCodeNoTypesToSuggest:
			status = http.StatusNotFound
		case domainerror.ErrCodeSuggestionFailed:
			status = http.StatusBadGateway
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: suggestionErr.Message,
			Code:  string(suggestionErr.Code),
		})
		return
	}

	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
