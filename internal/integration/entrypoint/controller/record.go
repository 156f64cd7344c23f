package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/usecase/record"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// RecordController handles financial record endpoints for one record kind.
// The router mounts two instances, one under /expenses and one under
// /incomes.
type RecordController struct {
	kind          entity.RecordKind
	createUseCase *record.CreateRecordUseCase
	listUseCase   *record.ListRecordsUseCase
	getUseCase    *record.GetRecordUseCase
	updateUseCase *record.UpdateRecordUseCase
	deleteUseCase *record.DeleteRecordUseCase
}

// NewRecordController creates a new record controller instance for the given kind.
func NewRecordController(
	kind entity.RecordKind,
	createUseCase *record.CreateRecordUseCase,
	listUseCase *record.ListRecordsUseCase,
	getUseCase *record.GetRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
) *RecordController {
	return &RecordController{
		kind:          kind,
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST requests for the controller's record kind.
func (c *RecordController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid type ID",
			Code:  string(domainerror.ErrCodeCategoryTypeNotFound),
		})
		return
	}

	input := record.CreateRecordInput{
		UserID:      userID,
		TypeID:      typeID,
		Kind:        c.kind,
		Description: req.Description,
		Value:       decimal.NewFromFloat(req.Value),
		Status:      req.Status,
		Date:        req.Date,
		Note:        req.Note,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(output.Record))
}

// List handles GET requests for the controller's record kind.
func (c *RecordController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListRecordsInput{
		UserID: userID,
		Kind:   c.kind,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(output.Records))
}

// Get handles GET /:id requests for the controller's record kind.
func (c *RecordController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), record.GetRecordInput{
		UserID:   userID,
		Kind:     c.kind,
		RecordID: recordID,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Update handles PATCH /:id requests for the controller's record kind.
func (c *RecordController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := record.UpdateRecordInput{
		UserID:      userID,
		Kind:        c.kind,
		RecordID:    recordID,
		Description: req.Description,
		Status:      req.Status,
		Date:        req.Date,
		Note:        req.Note,
	}
	if req.Value != nil {
		value := decimal.NewFromFloat(*req.Value)
		input.Value = &value
	}
	if req.TypeID != nil {
		typeID, err := uuid.Parse(*req.TypeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid type ID",
				Code:  string(domainerror.ErrCodeCategoryTypeNotFound),
			})
			return
		}
		input.TypeID = &typeID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Delete handles DELETE /:id requests for the controller's record kind.
func (c *RecordController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		UserID:   userID,
		Kind:     c.kind,
		RecordID: recordID,
	}); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRecordError maps record errors to HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		status := http.StatusInternalServerError
		switch recordErr.Code {
		case domainerror.ErrCodeRecordNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNotRecordOwner:
			status = http.StatusForbidden
		case domainerror.ErrCodeInvalidRecordKind,
			domainerror.ErrCodeInvalidRecordValue,
			domainerror.ErrCodeMissingRecordFields,
			domainerror.ErrCodeRecordTypeNotVisible:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	var typeErr *domainerror.CategoryTypeError
	if errors.As(err, &typeErr) {
		status := http.StatusInternalServerError
		if typeErr.Code == domainerror.ErrCodeCategoryTypeNotFound {
			status = http.StatusNotFound
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

// unauthorized writes the shared missing-authentication response.
func unauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
