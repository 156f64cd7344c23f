package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

type fakeRecordRepo struct {
	records map[uuid.UUID]*entity.FinancialRecord
	types   map[uuid.UUID]*entity.CategoryType
	err     error
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{
		records: make(map[uuid.UUID]*entity.FinancialRecord),
		types:   make(map[uuid.UUID]*entity.CategoryType),
	}
}

func (f *fakeRecordRepo) Create(_ context.Context, record *entity.FinancialRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeRecordRepo) FindByID(_ context.Context, kind entity.RecordKind, id uuid.UUID) (*entity.FinancialRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.records[id]
	if !ok || record.Kind != kind {
		return nil, errors.New("record not found")
	}
	return record, nil
}

func (f *fakeRecordRepo) FindByUser(_ context.Context, kind entity.RecordKind, userID uuid.UUID) ([]*entity.RecordWithType, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.RecordWithType
	for _, record := range f.records {
		if record.Kind != kind || record.UserID != userID {
			continue
		}
		out = append(out, &entity.RecordWithType{Record: record, Type: f.types[record.TypeID]})
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, record *entity.FinancialRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, _ entity.RecordKind, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.records, id)
	return nil
}

type fakeTypeRepo struct {
	types map[uuid.UUID]*entity.CategoryType
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{types: make(map[uuid.UUID]*entity.CategoryType)}
}

func (f *fakeTypeRepo) Create(_ context.Context, categoryType *entity.CategoryType) error {
	f.types[categoryType.ID] = categoryType
	return nil
}

func (f *fakeTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CategoryType, error) {
	categoryType, ok := f.types[id]
	if !ok {
		return nil, errors.New("category type not found")
	}
	return categoryType, nil
}

func (f *fakeTypeRepo) FindVisible(_ context.Context, userID uuid.UUID, kind entity.RecordKind) ([]*entity.CategoryType, error) {
	var out []*entity.CategoryType
	for _, t := range f.types {
		if t.Kind == kind && t.VisibleTo(userID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTypeRepo) ExistsByNameAndUser(_ context.Context, name string, kind entity.RecordKind, userID uuid.UUID) (bool, error) {
	for _, t := range f.types {
		if t.IsGlobal || t.Name != name || t.Kind != kind {
			continue
		}
		if t.UserID != nil && *t.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

var _ adapter.RecordRepository = (*fakeRecordRepo)(nil)
var _ adapter.CategoryTypeRepository = (*fakeTypeRepo)(nil)

func validCreateInput(userID, typeID uuid.UUID) CreateRecordInput {
	return CreateRecordInput{
		UserID:      userID,
		TypeID:      typeID,
		Kind:        entity.RecordKindExpense,
		Description: "Groceries",
		Value:       decimal.NewFromInt(150),
		Status:      true,
		Date:        time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateRecordUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	globalType := entity.NewGlobalCategoryType("Food", entity.RecordKindExpense)

	recordRepo := newFakeRecordRepo()
	typeRepo := newFakeTypeRepo()
	typeRepo.types[globalType.ID] = globalType

	uc := NewCreateRecordUseCase(recordRepo, typeRepo)

	output, err := uc.Execute(context.Background(), validCreateInput(userID, globalType.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Record.ID == uuid.Nil {
		t.Error("expected record to get an ID")
	}
	if !output.Record.Value.Equal(decimal.NewFromInt(150)) {
		t.Errorf("value = %s, want 150", output.Record.Value)
	}
	if _, ok := recordRepo.records[output.Record.ID]; !ok {
		t.Error("record was not persisted")
	}
}

func TestCreateRecordUseCase_Validation(t *testing.T) {
	userID := uuid.New()
	globalType := entity.NewGlobalCategoryType("Food", entity.RecordKindExpense)

	typeRepo := newFakeTypeRepo()
	typeRepo.types[globalType.ID] = globalType

	tests := []struct {
		name     string
		mutate   func(*CreateRecordInput)
		wantCode domainerror.RecordErrorCode
	}{
		{
			name:     "invalid kind",
			mutate:   func(in *CreateRecordInput) { in.Kind = "transfer" },
			wantCode: domainerror.ErrCodeInvalidRecordKind,
		},
		{
			name:     "missing description",
			mutate:   func(in *CreateRecordInput) { in.Description = "" },
			wantCode: domainerror.ErrCodeMissingRecordFields,
		},
		{
			name:     "zero date",
			mutate:   func(in *CreateRecordInput) { in.Date = time.Time{} },
			wantCode: domainerror.ErrCodeMissingRecordFields,
		},
		{
			name:     "zero value",
			mutate:   func(in *CreateRecordInput) { in.Value = decimal.Zero },
			wantCode: domainerror.ErrCodeInvalidRecordValue,
		},
		{
			name:     "negative value",
			mutate:   func(in *CreateRecordInput) { in.Value = decimal.NewFromInt(-10) },
			wantCode: domainerror.ErrCodeInvalidRecordValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateRecordUseCase(newFakeRecordRepo(), typeRepo)
			input := validCreateInput(userID, globalType.ID)
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)

			var recordErr *domainerror.RecordError
			if !errors.As(err, &recordErr) {
				t.Fatalf("expected RecordError, got %v", err)
			}
			if recordErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", recordErr.Code, tt.wantCode)
			}
		})
	}
}

func TestCreateRecordUseCase_TypeVisibility(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	privateType := entity.NewCategoryType("Side projects", entity.RecordKindExpense, owner)
	incomeType := entity.NewGlobalCategoryType("Salary", entity.RecordKindIncome)

	typeRepo := newFakeTypeRepo()
	typeRepo.types[privateType.ID] = privateType
	typeRepo.types[incomeType.ID] = incomeType

	uc := NewCreateRecordUseCase(newFakeRecordRepo(), typeRepo)

	t.Run("another user's private type", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validCreateInput(stranger, privateType.ID))
		var recordErr *domainerror.RecordError
		if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeRecordTypeNotVisible {
			t.Fatalf("expected type-not-visible error, got %v", err)
		}
	})

	t.Run("kind mismatch", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validCreateInput(owner, incomeType.ID))
		var recordErr *domainerror.RecordError
		if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeRecordTypeNotVisible {
			t.Fatalf("expected type-not-visible error, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validCreateInput(owner, uuid.New()))
		var typeErr *domainerror.CategoryTypeError
		if !errors.As(err, &typeErr) || typeErr.Code != domainerror.ErrCodeCategoryTypeNotFound {
			t.Fatalf("expected category-type-not-found error, got %v", err)
		}
	})
}

func TestGetRecordUseCase_Ownership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	record := entity.NewFinancialRecord(
		owner, uuid.New(), entity.RecordKindExpense,
		"Rent", decimal.NewFromInt(1200), true,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "",
	)

	recordRepo := newFakeRecordRepo()
	recordRepo.records[record.ID] = record

	uc := NewGetRecordUseCase(recordRepo)

	output, err := uc.Execute(context.Background(), GetRecordInput{
		UserID: owner, Kind: entity.RecordKindExpense, RecordID: record.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error for owner: %v", err)
	}
	if output.Record.ID != record.ID {
		t.Errorf("record ID = %s, want %s", output.Record.ID, record.ID)
	}

	_, err = uc.Execute(context.Background(), GetRecordInput{
		UserID: stranger, Kind: entity.RecordKindExpense, RecordID: record.ID,
	})
	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeNotRecordOwner {
		t.Fatalf("expected not-owner error, got %v", err)
	}

	_, err = uc.Execute(context.Background(), GetRecordInput{
		UserID: owner, Kind: entity.RecordKindIncome, RecordID: record.ID,
	})
	if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeRecordNotFound {
		t.Fatalf("expected not-found error for kind mismatch, got %v", err)
	}
}

func TestUpdateRecordUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	foodType := entity.NewGlobalCategoryType("Food", entity.RecordKindExpense)
	transportType := entity.NewGlobalCategoryType("Transport", entity.RecordKindExpense)

	record := entity.NewFinancialRecord(
		userID, foodType.ID, entity.RecordKindExpense,
		"Groceries", decimal.NewFromInt(150), false,
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), "",
	)

	recordRepo := newFakeRecordRepo()
	recordRepo.records[record.ID] = record
	typeRepo := newFakeTypeRepo()
	typeRepo.types[foodType.ID] = foodType
	typeRepo.types[transportType.ID] = transportType

	uc := NewUpdateRecordUseCase(recordRepo, typeRepo)

	newDescription := "Bus pass"
	newValue := decimal.NewFromInt(80)
	newStatus := true

	output, err := uc.Execute(context.Background(), UpdateRecordInput{
		UserID:      userID,
		Kind:        entity.RecordKindExpense,
		RecordID:    record.ID,
		Description: &newDescription,
		Value:       &newValue,
		TypeID:      &transportType.ID,
		Status:      &newStatus,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Record.Description != "Bus pass" {
		t.Errorf("description = %q, want Bus pass", output.Record.Description)
	}
	if !output.Record.Value.Equal(newValue) {
		t.Errorf("value = %s, want 80", output.Record.Value)
	}
	if output.Record.TypeID != transportType.ID {
		t.Errorf("type ID not updated")
	}
	if !output.Record.Status {
		t.Error("status not updated")
	}
}

func TestUpdateRecordUseCase_RejectsInvalidPatch(t *testing.T) {
	userID := uuid.New()
	foodType := entity.NewGlobalCategoryType("Food", entity.RecordKindExpense)
	record := entity.NewFinancialRecord(
		userID, foodType.ID, entity.RecordKindExpense,
		"Groceries", decimal.NewFromInt(150), false,
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), "",
	)

	recordRepo := newFakeRecordRepo()
	recordRepo.records[record.ID] = record
	typeRepo := newFakeTypeRepo()
	typeRepo.types[foodType.ID] = foodType

	uc := NewUpdateRecordUseCase(recordRepo, typeRepo)

	negative := decimal.NewFromInt(-5)
	_, err := uc.Execute(context.Background(), UpdateRecordInput{
		UserID:   userID,
		Kind:     entity.RecordKindExpense,
		RecordID: record.ID,
		Value:    &negative,
	})
	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeInvalidRecordValue {
		t.Fatalf("expected invalid-value error, got %v", err)
	}
	if !recordRepo.records[record.ID].Value.Equal(decimal.NewFromInt(150)) {
		t.Error("record value mutated despite rejected patch")
	}
}

func TestDeleteRecordUseCase_Execute(t *testing.T) {
	owner := uuid.New()
	record := entity.NewFinancialRecord(
		owner, uuid.New(), entity.RecordKindIncome,
		"Salary", decimal.NewFromInt(3000), true,
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), "",
	)

	recordRepo := newFakeRecordRepo()
	recordRepo.records[record.ID] = record

	uc := NewDeleteRecordUseCase(recordRepo)

	err := uc.Execute(context.Background(), DeleteRecordInput{
		UserID: uuid.New(), Kind: entity.RecordKindIncome, RecordID: record.ID,
	})
	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeNotRecordOwner {
		t.Fatalf("expected not-owner error, got %v", err)
	}

	if err := uc.Execute(context.Background(), DeleteRecordInput{
		UserID: owner, Kind: entity.RecordKindIncome, RecordID: record.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := recordRepo.records[record.ID]; ok {
		t.Error("record still present after delete")
	}
}

func TestListRecordsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()

	recordRepo := newFakeRecordRepo()
	for i, owner := range []uuid.UUID{userID, userID, other} {
		r := entity.NewFinancialRecord(
			owner, uuid.New(), entity.RecordKindExpense,
			"r", decimal.NewFromInt(int64(10+i)), true,
			time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "",
		)
		recordRepo.records[r.ID] = r
	}

	uc := NewListRecordsUseCase(recordRepo)

	output, err := uc.Execute(context.Background(), ListRecordsInput{
		UserID: userID, Kind: entity.RecordKindExpense,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Records) != 2 {
		t.Errorf("got %d records, want 2", len(output.Records))
	}

	_, err = uc.Execute(context.Background(), ListRecordsInput{UserID: userID, Kind: "other"})
	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeInvalidRecordKind {
		t.Fatalf("expected invalid-kind error, got %v", err)
	}
}
