package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles the monthly aggregation endpoints: totals, net
// balance and per-category reports.
type ReportController struct {
	expenseTotalUseCase   *report.GetExpenseTotalUseCase
	incomeTotalUseCase    *report.GetIncomeTotalUseCase
	netBalanceUseCase     *report.GetNetBalanceUseCase
	categoryReportUseCase *report.GetCategoryReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	expenseTotalUseCase *report.GetExpenseTotalUseCase,
	incomeTotalUseCase *report.GetIncomeTotalUseCase,
	netBalanceUseCase *report.GetNetBalanceUseCase,
	categoryReportUseCase *report.GetCategoryReportUseCase,
) *ReportController {
	return &ReportController{
		expenseTotalUseCase:   expenseTotalUseCase,
		incomeTotalUseCase:    incomeTotalUseCase,
		netBalanceUseCase:     netBalanceUseCase,
		categoryReportUseCase: categoryReportUseCase,
	}
}

// parsePeriod reads the month and year query parameters, defaulting to the
// current UTC month when absent.
func parsePeriod(ctx *gin.Context) (month, year int, ok bool) {
	now := time.Now().UTC()

	month = int(now.Month())
	if raw := ctx.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			periodError(ctx, "month must be a number")
			return 0, 0, false
		}
		month = parsed
	}

	year = now.Year()
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			periodError(ctx, "year must be a number")
			return 0, 0, false
		}
		year = parsed
	}

	return month, year, true
}

// ExpenseTotal handles GET /expenses/total requests.
func (c *ReportController) ExpenseTotal(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	month, year, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.expenseTotalUseCase.Execute(ctx.Request.Context(), report.GetExpenseTotalInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalResponse(output.Total, month, year))
}

// IncomeTotal handles GET /incomes/total requests.
func (c *ReportController) IncomeTotal(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	month, year, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.incomeTotalUseCase.Execute(ctx.Request.Context(), report.GetIncomeTotalInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalResponse(output.Total, month, year))
}

// NetBalance handles GET /total requests.
func (c *ReportController) NetBalance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	month, year, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.netBalanceUseCase.Execute(ctx.Request.Context(), report.GetNetBalanceInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalResponse(output.Total, output.Month, output.Year))
}

// ExpenseReport handles GET /expenses/report requests.
func (c *ReportController) ExpenseReport(ctx *gin.Context) {
	c.categoryReport(ctx, entity.RecordKindExpense)
}

// IncomeReport handles GET /incomes/report requests.
func (c *ReportController) IncomeReport(ctx *gin.Context) {
	c.categoryReport(ctx, entity.RecordKindIncome)
}

// categoryReport serves the per-category report for the given kind.
func (c *ReportController) categoryReport(ctx *gin.Context, kind entity.RecordKind) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	month, year, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.categoryReportUseCase.Execute(ctx.Request.Context(), report.GetCategoryReportInput{
		UserID: userID,
		Kind:   kind,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryReportResponse(output.Lines, month, year))
}

// handleReportError maps aggregation errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusInternalServerError
		if reportErr.Code == domainerror.ErrCodeInvalidPeriod {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) && recordErr.Code == domainerror.ErrCodeInvalidRecordKind {
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

// periodError writes an invalid-period response.
func periodError(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidPeriod),
	})
}
