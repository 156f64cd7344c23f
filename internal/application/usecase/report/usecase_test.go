package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/domain/valueobject"
)

// fakeLedger serves records from memory and applies the same filtering a
// real store would.
type fakeLedger struct {
	records []*entity.FinancialRecord
	types   []*entity.CategoryType
	err     error
}

func (f *fakeLedger) FindRecordsByPeriod(
	_ context.Context,
	kind entity.RecordKind,
	ownerID uuid.UUID,
	interval valueobject.PeriodInterval,
	statusFilter *bool,
) ([]*entity.FinancialRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.FinancialRecord
	for _, record := range f.records {
		if record.Kind != kind || record.UserID != ownerID {
			continue
		}
		if !interval.Contains(record.Date) {
			continue
		}
		if statusFilter != nil && record.Status != *statusFilter {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeLedger) FindCategoryTypesByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.CategoryType, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*entity.CategoryType
	for _, categoryType := range f.types {
		if wanted[categoryType.ID] {
			out = append(out, categoryType)
		}
	}
	return out, nil
}

func ledgerRecord(userID, typeID uuid.UUID, kind entity.RecordKind, value int64, day int, status bool) *entity.FinancialRecord {
	return &entity.FinancialRecord{
		ID:     uuid.New(),
		UserID: userID,
		TypeID: typeID,
		Kind:   kind,
		Value:  decimal.NewFromInt(value),
		Status: status,
		Date:   time.Date(2023, 7, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetExpenseTotalUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	typeID := uuid.New()

	ledger := &fakeLedger{records: []*entity.FinancialRecord{
		ledgerRecord(userID, typeID, entity.RecordKindExpense, 100, 10, true),
		ledgerRecord(userID, typeID, entity.RecordKindExpense, 50, 20, false),
		ledgerRecord(userID, typeID, entity.RecordKindIncome, 999, 15, true),
	}}

	uc := NewGetExpenseTotalUseCase(ledger)

	// Expenses count regardless of the paid flag.
	output, err := uc.Execute(context.Background(), GetExpenseTotalInput{UserID: userID, Year: 2023, Month: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected total 150, got %s", output.Total)
	}

	t.Run("empty month yields zero", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetExpenseTotalInput{UserID: userID, Year: 2023, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Total.IsZero() {
			t.Errorf("expected zero total, got %s", output.Total)
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetExpenseTotalInput{UserID: userID, Year: 2023, Month: 13})
		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatalf("expected *ReportError, got %v", err)
		}
	})
}

func TestGetIncomeTotalUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	typeID := uuid.New()

	ledger := &fakeLedger{records: []*entity.FinancialRecord{
		ledgerRecord(userID, typeID, entity.RecordKindIncome, 3000, 5, true),
		ledgerRecord(userID, typeID, entity.RecordKindIncome, 500, 12, false),
	}}

	uc := NewGetIncomeTotalUseCase(ledger)

	// Pending incomes are excluded; only received ones count.
	output, err := uc.Execute(context.Background(), GetIncomeTotalInput{UserID: userID, Year: 2023, Month: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Total.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected total 3000, got %s", output.Total)
	}
}

func TestGetNetBalanceUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	typeID := uuid.New()

	tests := []struct {
		name    string
		records []*entity.FinancialRecord
		want    int64
	}{
		{
			name: "surplus",
			records: []*entity.FinancialRecord{
				ledgerRecord(userID, typeID, entity.RecordKindIncome, 3000, 5, true),
				ledgerRecord(userID, typeID, entity.RecordKindExpense, 1500, 10, true),
			},
			want: 1500,
		},
		{
			name: "deficit with no income",
			records: []*entity.FinancialRecord{
				ledgerRecord(userID, typeID, entity.RecordKindExpense, 1500, 10, false),
			},
			want: -1500,
		},
		{
			name: "pending income does not count, unpaid expense does",
			records: []*entity.FinancialRecord{
				ledgerRecord(userID, typeID, entity.RecordKindIncome, 2000, 5, false),
				ledgerRecord(userID, typeID, entity.RecordKindExpense, 300, 10, false),
			},
			want: -300,
		},
		{
			name:    "empty month breaks even",
			records: nil,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &fakeLedger{records: tt.records}
			uc := NewGetNetBalanceUseCase(
				NewGetIncomeTotalUseCase(ledger),
				NewGetExpenseTotalUseCase(ledger),
			)

			output, err := uc.Execute(context.Background(), GetNetBalanceInput{UserID: userID, Year: 2023, Month: 7})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !output.Total.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("expected total %d, got %s", tt.want, output.Total)
			}
			if output.Month != 7 || output.Year != 2023 {
				t.Errorf("expected period 2023-07 echoed back, got %d-%d", output.Year, output.Month)
			}
		})
	}
}

func TestGetNetBalanceUseCase_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	ledger := &fakeLedger{err: storeErr}
	uc := NewGetNetBalanceUseCase(
		NewGetIncomeTotalUseCase(ledger),
		NewGetExpenseTotalUseCase(ledger),
	)

	_, err := uc.Execute(context.Background(), GetNetBalanceInput{UserID: uuid.New(), Year: 2023, Month: 7})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error to propagate unchanged, got %v", err)
	}
}

func TestGetCategoryReportUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	foodType := &entity.CategoryType{ID: uuid.New(), Name: "Food", Kind: entity.RecordKindExpense, IsGlobal: true}
	deletedTypeID := uuid.New()

	ledger := &fakeLedger{
		records: []*entity.FinancialRecord{
			ledgerRecord(userID, foodType.ID, entity.RecordKindExpense, 120, 3, true),
			ledgerRecord(userID, foodType.ID, entity.RecordKindExpense, 80, 14, false),
			ledgerRecord(userID, deletedTypeID, entity.RecordKindExpense, 150, 21, true),
		},
		types: []*entity.CategoryType{foodType},
	}

	uc := NewGetCategoryReportUseCase(ledger)

	output, err := uc.Execute(context.Background(), GetCategoryReportInput{
		UserID: userID,
		Kind:   entity.RecordKindExpense,
		Year:   2023,
		Month:  7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Lines) != 2 {
		t.Fatalf("expected 2 report lines, got %d", len(output.Lines))
	}
	if output.Lines[0].Type == nil || output.Lines[0].Type.ID != foodType.ID {
		t.Errorf("expected first line to carry the Food type, got %v", output.Lines[0].Type)
	}
	if !output.Lines[0].Total.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected first line total 200, got %s", output.Lines[0].Total)
	}
	if output.Lines[1].Type != nil {
		t.Errorf("expected nil type for deleted category, got %v", output.Lines[1].Type)
	}
	if !output.Lines[1].Total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected second line total 150, got %s", output.Lines[1].Total)
	}
}

func TestGetCategoryReportUseCase_IncomeOnlyCountsReceived(t *testing.T) {
	userID := uuid.New()
	salaryType := &entity.CategoryType{ID: uuid.New(), Name: "Salary", Kind: entity.RecordKindIncome, IsGlobal: true}

	ledger := &fakeLedger{
		records: []*entity.FinancialRecord{
			ledgerRecord(userID, salaryType.ID, entity.RecordKindIncome, 3000, 5, true),
			ledgerRecord(userID, salaryType.ID, entity.RecordKindIncome, 400, 20, false),
		},
		types: []*entity.CategoryType{salaryType},
	}

	uc := NewGetCategoryReportUseCase(ledger)

	output, err := uc.Execute(context.Background(), GetCategoryReportInput{
		UserID: userID,
		Kind:   entity.RecordKindIncome,
		Year:   2023,
		Month:  7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Lines) != 1 {
		t.Fatalf("expected 1 report line, got %d", len(output.Lines))
	}
	if !output.Lines[0].Total.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected pending income excluded, total 3000, got %s", output.Lines[0].Total)
	}
}

func TestGetCategoryReportUseCase_Validation(t *testing.T) {
	uc := NewGetCategoryReportUseCase(&fakeLedger{})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetCategoryReportInput{
			UserID: uuid.New(),
			Kind:   entity.RecordKind("transfer"),
			Year:   2023,
			Month:  7,
		})
		var recordErr *domainerror.RecordError
		if !errors.As(err, &recordErr) {
			t.Fatalf("expected *RecordError, got %v", err)
		}
		if recordErr.Code != domainerror.ErrCodeInvalidRecordKind {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidRecordKind, recordErr.Code)
		}
	})

	t.Run("empty month yields empty report", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetCategoryReportInput{
			UserID: uuid.New(),
			Kind:   entity.RecordKindExpense,
			Year:   2023,
			Month:  7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Lines == nil || len(output.Lines) != 0 {
			t.Errorf("expected empty non-nil lines, got %v", output.Lines)
		}
	})
}
