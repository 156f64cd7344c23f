package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/usecase/savingsgoal"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// SavingsGoalController handles savings goal endpoints.
type SavingsGoalController struct {
	createUseCase *savingsgoal.CreateGoalUseCase
	listUseCase   *savingsgoal.ListGoalsUseCase
	getUseCase    *savingsgoal.GetGoalUseCase
	updateUseCase *savingsgoal.UpdateGoalUseCase
	deleteUseCase *savingsgoal.DeleteGoalUseCase
}

// NewSavingsGoalController creates a new savings goal controller instance.
func NewSavingsGoalController(
	createUseCase *savingsgoal.CreateGoalUseCase,
	listUseCase *savingsgoal.ListGoalsUseCase,
	getUseCase *savingsgoal.GetGoalUseCase,
	updateUseCase *savingsgoal.UpdateGoalUseCase,
	deleteUseCase *savingsgoal.DeleteGoalUseCase,
) *SavingsGoalController {
	return &SavingsGoalController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /goals requests.
func (c *SavingsGoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSavingsGoalValue),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), savingsgoal.CreateGoalInput{
		UserID:     userID,
		Value:      decimal.NewFromFloat(req.Value),
		Percentage: req.Percentage,
		Date:       req.Date,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingsGoalResponse(output.Goal))
}

// List handles GET /goals requests.
func (c *SavingsGoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), savingsgoal.ListGoalsInput{UserID: userID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *SavingsGoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeSavingsGoalNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), savingsgoal.GetGoalInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *SavingsGoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeSavingsGoalNotFound),
		})
		return
	}

	var req dto.UpdateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSavingsGoalValue),
		})
		return
	}

	input := savingsgoal.UpdateGoalInput{
		UserID:     userID,
		GoalID:     goalID,
		Percentage: req.Percentage,
		Achieved:   req.Achieved,
		Date:       req.Date,
	}
	if req.Value != nil {
		value := decimal.NewFromFloat(*req.Value)
		input.Value = &value
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *SavingsGoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeSavingsGoalNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), savingsgoal.DeleteGoalInput{
		UserID: userID,
		GoalID: goalID,
	}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGoalError maps savings goal errors to HTTP responses.
func (c *SavingsGoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.SavingsGoalError
	if errors.As(err, &goalErr) {
		status := http.StatusInternalServerError
		switch goalErr.Code {
		case domainerror.ErrCodeSavingsGoalNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNotSavingsGoalOwner:
			status = http.StatusForbidden
		case domainerror.ErrCodeSavingsGoalMonthTaken:
			status = http.StatusConflict
		case domainerror.ErrCodeInvalidSavingsGoalValue,
			domainerror.ErrCodeInvalidSavingsGoalDate:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
