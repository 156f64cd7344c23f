package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/domain/valueobject"
)

func testRecord(userID, typeID uuid.UUID, value int64, date time.Time, status bool) *entity.FinancialRecord {
	return &entity.FinancialRecord{
		ID:     uuid.New(),
		UserID: userID,
		TypeID: typeID,
		Kind:   entity.RecordKindExpense,
		Value:  decimal.NewFromInt(value),
		Status: status,
		Date:   date,
	}
}

func TestSumByPeriod(t *testing.T) {
	userID := uuid.New()
	otherUser := uuid.New()
	typeA := uuid.New()
	typeB := uuid.New()

	july, err := ResolvePeriod(2023, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := []*entity.FinancialRecord{
		testRecord(userID, typeA, 100, time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC), true),
		testRecord(userID, typeA, 50, time.Date(2023, 7, 20, 0, 0, 0, 0, time.UTC), false),
		testRecord(userID, typeB, 30, time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC), true),
		testRecord(otherUser, typeA, 999, time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC), true),
	}

	received := true
	pending := false

	tests := []struct {
		name         string
		records      []*entity.FinancialRecord
		statusFilter *bool
		want         int64
	}{
		{name: "status true only", records: records, statusFilter: &received, want: 100},
		{name: "no status filter counts all in period", records: records, statusFilter: nil, want: 150},
		{name: "status false only", records: records, statusFilter: &pending, want: 50},
		{name: "empty set yields zero", records: nil, statusFilter: nil, want: 0},
		{name: "nothing matches yields zero", records: records[2:3], statusFilter: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumByPeriod(tt.records, userID, july, tt.statusFilter)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("expected %d, got %s", tt.want, got)
			}
		})
	}
}

func TestGroupSumByCategory(t *testing.T) {
	userID := uuid.New()
	typeA := uuid.New()
	typeB := uuid.New()

	july, err := ResolvePeriod(2023, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := []*entity.FinancialRecord{
		testRecord(userID, typeA, 100, time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC), true),
		testRecord(userID, typeB, 40, time.Date(2023, 7, 12, 0, 0, 0, 0, time.UTC), true),
		testRecord(userID, typeA, 50, time.Date(2023, 7, 20, 0, 0, 0, 0, time.UTC), false),
		testRecord(userID, typeB, 30, time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC), true),
	}

	sums := GroupSumByCategory(records, userID, july, nil)

	if len(sums) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(sums))
	}
	if sums[0].TypeID != typeA || !sums[0].Total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected first group typeA=150, got %v=%s", sums[0].TypeID, sums[0].Total)
	}
	if sums[1].TypeID != typeB || !sums[1].Total.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected second group typeB=40, got %v=%s", sums[1].TypeID, sums[1].Total)
	}
}

// Grouping must never lose or double-count value: the group totals add up to
// the flat sum under the same filter.
func TestGroupSumByCategory_PreservesTotal(t *testing.T) {
	userID := uuid.New()
	types := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	july, err := ResolvePeriod(2023, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []*entity.FinancialRecord
	for i := 0; i < 30; i++ {
		records = append(records, testRecord(
			userID,
			types[i%len(types)],
			int64(i*7+1),
			time.Date(2023, 7, 1+i%28, 0, 0, 0, 0, time.UTC),
			i%2 == 0,
		))
	}

	received := true
	for _, statusFilter := range []*bool{nil, &received} {
		grouped := GroupSumByCategory(records, userID, july, statusFilter)
		groupedTotal := decimal.Zero
		for _, sum := range grouped {
			groupedTotal = groupedTotal.Add(sum.Total)
		}

		flat := SumByPeriod(records, userID, july, statusFilter)
		if !groupedTotal.Equal(flat) {
			t.Errorf("grouped total %s != flat sum %s (statusFilter=%v)", groupedTotal, flat, statusFilter)
		}
	}
}

func TestJoinCategories(t *testing.T) {
	typeA := &entity.CategoryType{ID: uuid.New(), Name: "Food", Kind: entity.RecordKindExpense, IsGlobal: true}
	deletedTypeID := uuid.New()

	sums := []valueobject.CategorySum{
		{TypeID: typeA.ID, Total: decimal.NewFromInt(200)},
		{TypeID: deletedTypeID, Total: decimal.NewFromInt(150)},
	}
	lookup := map[uuid.UUID]*entity.CategoryType{typeA.ID: typeA}

	lines := JoinCategories(sums, lookup)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Type != typeA {
		t.Errorf("expected first line type %q, got %v", typeA.Name, lines[0].Type)
	}
	if !lines[0].Total.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected first line total 200, got %s", lines[0].Total)
	}

	// A deleted type degrades to a nil type but the total is preserved.
	if lines[1].Type != nil {
		t.Errorf("expected nil type for deleted category, got %v", lines[1].Type)
	}
	if !lines[1].Total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected second line total 150, got %s", lines[1].Total)
	}
}

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name    string
		income  int64
		expense int64
		want    int64
	}{
		{name: "surplus", income: 3000, expense: 1500, want: 1500},
		{name: "deficit", income: 0, expense: 1500, want: -1500},
		{name: "break-even", income: 500, expense: 500, want: 0},
		{name: "both zero", income: 0, expense: 0, want: 0},
		{name: "negative expense", income: 100, expense: -50, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBalance(decimal.NewFromInt(tt.income), decimal.NewFromInt(tt.expense))
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("ComputeBalance(%d, %d) = %s, want %d", tt.income, tt.expense, got, tt.want)
			}
		})
	}
}
