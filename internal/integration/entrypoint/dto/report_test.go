package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/domain/valueobject"
)

func TestToCategoryReportResponse(t *testing.T) {
	food := entity.NewGlobalCategoryType("Alimentación", entity.RecordKindExpense)
	transport := entity.NewGlobalCategoryType("Transporte", entity.RecordKindExpense)

	lines := []valueobject.CategoryReportLine{
		{Type: food, Total: decimal.RequireFromString("120.50")},
		{Type: transport, Total: decimal.RequireFromString("45.25")},
		{Type: nil, Total: decimal.RequireFromString("10")},
	}

	resp := ToCategoryReportResponse(lines, 3, 2024)

	if resp.Total != "175.75" {
		t.Errorf("expected grand total 175.75, got %s", resp.Total)
	}
	if resp.Month != 3 || resp.Year != 2024 {
		t.Errorf("period lost in assembly: month=%d year=%d", resp.Month, resp.Year)
	}
	if len(resp.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(resp.Lines))
	}

	// Line order mirrors the aggregation order.
	if resp.Lines[0].Type == nil || resp.Lines[0].Type.Name != "Alimentación" {
		t.Errorf("first line type mismatch: %+v", resp.Lines[0].Type)
	}
	if resp.Lines[1].Total != "45.25" {
		t.Errorf("second line total mismatch: %s", resp.Lines[1].Total)
	}

	// Deleted types keep their total and serialize as an explicit null.
	if resp.Lines[2].Type != nil {
		t.Errorf("expected nil type on orphan line, got %+v", resp.Lines[2].Type)
	}
	raw, err := json.Marshal(resp.Lines[2])
	if err != nil {
		t.Fatalf("failed to marshal line: %v", err)
	}
	if !strings.Contains(string(raw), `"type":null`) {
		t.Errorf("orphan line should serialize a null type, got %s", raw)
	}
}

func TestToCategoryReportResponseEmpty(t *testing.T) {
	resp := ToCategoryReportResponse(nil, 1, 2024)

	if resp.Total != "0" {
		t.Errorf("expected zero total, got %s", resp.Total)
	}
	if len(resp.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(resp.Lines))
	}
}

func TestToTotalResponse(t *testing.T) {
	resp := ToTotalResponse(decimal.RequireFromString("1000.75"), 12, 2023)

	if resp.Total != "1000.75" {
		t.Errorf("expected 1000.75, got %s", resp.Total)
	}
	if resp.Month != 12 || resp.Year != 2023 {
		t.Errorf("period mismatch: month=%d year=%d", resp.Month, resp.Year)
	}
}
