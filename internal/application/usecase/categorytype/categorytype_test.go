package categorytype

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

type fakeTypeRepo struct {
	types map[uuid.UUID]*entity.CategoryType
	err   error
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{types: make(map[uuid.UUID]*entity.CategoryType)}
}

func (f *fakeTypeRepo) Create(_ context.Context, categoryType *entity.CategoryType) error {
	if f.err != nil {
		return f.err
	}
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
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.CategoryType
	for _, t := range f.types {
		if t.Kind == kind && t.VisibleTo(userID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTypeRepo) ExistsByNameAndUser(_ context.Context, name string, kind entity.RecordKind, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
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

func TestCreateTypeUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	repo := newFakeTypeRepo()
	uc := NewCreateTypeUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateTypeInput{
		UserID: userID,
		Name:   "  Subscriptions  ",
		Kind:   entity.RecordKindExpense,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.CategoryType.Name != "Subscriptions" {
		t.Errorf("name = %q, want trimmed Subscriptions", output.CategoryType.Name)
	}
	if output.CategoryType.IsGlobal {
		t.Error("user-created type must not be global")
	}
	if output.CategoryType.UserID == nil || *output.CategoryType.UserID != userID {
		t.Error("type not scoped to creating user")
	}
}

func TestCreateTypeUseCase_Validation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		input    CreateTypeInput
		wantCode domainerror.CategoryTypeErrorCode
	}{
		{
			name:     "empty name",
			input:    CreateTypeInput{UserID: userID, Name: "   ", Kind: entity.RecordKindExpense},
			wantCode: domainerror.ErrCodeCategoryTypeNameEmpty,
		},
		{
			name:     "invalid kind",
			input:    CreateTypeInput{UserID: userID, Name: "Pets", Kind: "transfer"},
			wantCode: domainerror.ErrCodeInvalidCategoryKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateTypeUseCase(newFakeTypeRepo())
			_, err := uc.Execute(context.Background(), tt.input)

			var typeErr *domainerror.CategoryTypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("expected CategoryTypeError, got %v", err)
			}
			if typeErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", typeErr.Code, tt.wantCode)
			}
		})
	}
}

func TestCreateTypeUseCase_DuplicateName(t *testing.T) {
	userID := uuid.New()
	repo := newFakeTypeRepo()
	existing := entity.NewCategoryType("Pets", entity.RecordKindExpense, userID)
	repo.types[existing.ID] = existing

	uc := NewCreateTypeUseCase(repo)

	_, err := uc.Execute(context.Background(), CreateTypeInput{
		UserID: userID, Name: "Pets", Kind: entity.RecordKindExpense,
	})
	var typeErr *domainerror.CategoryTypeError
	if !errors.As(err, &typeErr) || typeErr.Code != domainerror.ErrCodeCategoryTypeNameExists {
		t.Fatalf("expected duplicate-name error, got %v", err)
	}

	// Same name under the other kind is a different namespace.
	if _, err := uc.Execute(context.Background(), CreateTypeInput{
		UserID: userID, Name: "Pets", Kind: entity.RecordKindIncome,
	}); err != nil {
		t.Fatalf("unexpected error for other kind: %v", err)
	}

	// Same name for another user is allowed.
	if _, err := uc.Execute(context.Background(), CreateTypeInput{
		UserID: uuid.New(), Name: "Pets", Kind: entity.RecordKindExpense,
	}); err != nil {
		t.Fatalf("unexpected error for other user: %v", err)
	}
}

func TestListTypesUseCase_Visibility(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()

	repo := newFakeTypeRepo()
	global := entity.NewGlobalCategoryType("Food", entity.RecordKindExpense)
	mine := entity.NewCategoryType("Hobbies", entity.RecordKindExpense, userID)
	theirs := entity.NewCategoryType("Secret", entity.RecordKindExpense, otherID)
	incomeGlobal := entity.NewGlobalCategoryType("Salary", entity.RecordKindIncome)
	for _, ct := range []*entity.CategoryType{global, mine, theirs, incomeGlobal} {
		repo.types[ct.ID] = ct
	}

	uc := NewListTypesUseCase(repo)

	output, err := uc.Execute(context.Background(), ListTypesInput{
		UserID: userID, Kind: entity.RecordKindExpense,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Types) != 2 {
		t.Fatalf("got %d types, want 2 (global + own)", len(output.Types))
	}
	for _, ct := range output.Types {
		if ct.ID == theirs.ID {
			t.Error("another user's private type leaked into the listing")
		}
		if ct.Kind != entity.RecordKindExpense {
			t.Errorf("listing leaked %s type %q", ct.Kind, ct.Name)
		}
	}
}
