package dto

import (
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/valueobject"
)

// TotalResponse represents a monthly total in API responses.
type TotalResponse struct {
	Total string `json:"total"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
}

// CategoryReportLineResponse represents one line of a per-category report.
// Type is null when the category type was deleted; the total is kept.
type CategoryReportLineResponse struct {
	Type  *CategoryTypeResponse `json:"type"`
	Total string                `json:"total"`
}

// CategoryReportResponse represents a per-category monthly report.
type CategoryReportResponse struct {
	Lines []CategoryReportLineResponse `json:"lines"`
	Total string                       `json:"total"`
	Month int                          `json:"month"`
	Year  int                          `json:"year"`
}

// ToTotalResponse builds a TotalResponse from an aggregated decimal total.
func ToTotalResponse(total decimal.Decimal, month, year int) TotalResponse {
	return TotalResponse{
		Total: total.String(),
		Month: month,
		Year:  year,
	}
}

// ToCategoryReportResponse assembles the external report shape from the
// aggregated lines. The grand total is the sum of all line totals.
func ToCategoryReportResponse(lines []valueobject.CategoryReportLine, month, year int) CategoryReportResponse {
	out := make([]CategoryReportLineResponse, len(lines))
	grandTotal := decimal.Zero
	for i, line := range lines {
		lineResp := CategoryReportLineResponse{
			Total: line.Total.String(),
		}
		if line.Type != nil {
			typeResp := ToCategoryTypeResponse(line.Type)
			lineResp.Type = &typeResp
		}
		out[i] = lineResp
		grandTotal = grandTotal.Add(line.Total)
	}

	return CategoryReportResponse{
		Lines: out,
		Total: grandTotal.String(),
		Month: month,
		Year:  year,
	}
}
