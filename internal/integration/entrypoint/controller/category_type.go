package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financeflow/backend/internal/application/usecase/categorytype"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// CategoryTypeController handles category type endpoints.
type CategoryTypeController struct {
	createUseCase *categorytype.CreateTypeUseCase
	listUseCase   *categorytype.ListTypesUseCase
}

// NewCategoryTypeController creates a new category type controller instance.
func NewCategoryTypeController(
	createUseCase *categorytype.CreateTypeUseCase,
	listUseCase *categorytype.ListTypesUseCase,
) *CategoryTypeController {
	return &CategoryTypeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /types requests.
func (c *CategoryTypeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateCategoryTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryTypeNameEmpty),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), categorytype.CreateTypeInput{
		UserID: userID,
		Name:   req.Name,
		Kind:   entity.RecordKind(req.Kind),
	})
	if err != nil {
		c.handleCategoryTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryTypeResponse(output.CategoryType))
}

// List handles GET /types requests. The kind query parameter selects
// between expense and income types.
func (c *CategoryTypeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	kind := entity.RecordKind(ctx.DefaultQuery("kind", string(entity.RecordKindExpense)))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), categorytype.ListTypesInput{
		UserID: userID,
		Kind:   kind,
	})
	if err != nil {
		c.handleCategoryTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTypeListResponse(output.Types))
}

// handleCategoryTypeError maps category type errors to HTTP responses.
func (c *CategoryTypeController) handleCategoryTypeError(ctx *gin.Context, err error) {
	var typeErr *domainerror.CategoryTypeError
	if errors.As(err, &typeErr) {
		status := http.StatusInternalServerError
		switch typeErr.Code {
		case domainerror.ErrCodeCategoryTypeNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeCategoryTypeNameExists:
			status = http.StatusConflict
		case domainerror.ErrCodeCategoryTypeNameEmpty,
			domainerror.ErrCodeInvalidCategoryKind:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: typeErr.Message,
			Code:  string(typeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
