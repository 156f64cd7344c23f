package suggestion

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

type fakeTypeRepo struct {
	types []*entity.CategoryType
	err   error
}

func (f *fakeTypeRepo) Create(_ context.Context, _ *entity.CategoryType) error { return nil }

func (f *fakeTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CategoryType, error) {
	for _, t := range f.types {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errors.New("category type not found")
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

func (f *fakeTypeRepo) ExistsByNameAndUser(_ context.Context, _ string, _ entity.RecordKind, _ uuid.UUID) (bool, error) {
	return false, nil
}

type fakeSuggester struct {
	available bool
	result    *adapter.CategorySuggestion
	err       error
	gotTypes  []*adapter.CategoryTypeForSuggestion
}

func (f *fakeSuggester) SuggestCategory(_ context.Context, _ string, types []*adapter.CategoryTypeForSuggestion) (*adapter.CategorySuggestion, error) {
	f.gotTypes = types
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeSuggester) IsAvailable() bool { return f.available }

var _ adapter.CategoryTypeRepository = (*fakeTypeRepo)(nil)
var _ adapter.SuggestionService = (*fakeSuggester)(nil)

func TestSuggestCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	food := entity.NewGlobalCategoryType("Food", entity.RecordKindExpense)
	transport := entity.NewGlobalCategoryType("Transport", entity.RecordKindExpense)
	salary := entity.NewGlobalCategoryType("Salary", entity.RecordKindIncome)

	repo := &fakeTypeRepo{types: []*entity.CategoryType{food, transport, salary}}
	suggester := &fakeSuggester{
		available: true,
		result:    &adapter.CategorySuggestion{TypeID: food.ID, Confidence: 0.92, Reasoning: "grocery purchase"},
	}

	uc := NewSuggestCategoryUseCase(repo, suggester)

	output, err := uc.Execute(context.Background(), SuggestCategoryInput{
		UserID: userID, Kind: entity.RecordKindExpense, Description: "Supermarket run",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Type.ID != food.ID {
		t.Errorf("suggested %q, want Food", output.Type.Name)
	}
	if output.Confidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", output.Confidence)
	}

	// Income types must not be offered as expense candidates.
	for _, candidate := range suggester.gotTypes {
		if candidate.ID == salary.ID {
			t.Error("income type offered as expense candidate")
		}
	}
}

func TestSuggestCategoryUseCase_Errors(t *testing.T) {
	userID := uuid.New()
	food := entity.NewGlobalCategoryType("Food", entity.RecordKindExpense)

	validInput := SuggestCategoryInput{
		UserID: userID, Kind: entity.RecordKindExpense, Description: "Supermarket run",
	}

	tests := []struct {
		name      string
		repo      *fakeTypeRepo
		suggester *fakeSuggester
		input     SuggestCategoryInput
		wantCode  domainerror.SuggestionErrorCode
	}{
		{
			name:      "blank description",
			repo:      &fakeTypeRepo{types: []*entity.CategoryType{food}},
			suggester: &fakeSuggester{available: true},
			input:     SuggestCategoryInput{UserID: userID, Kind: entity.RecordKindExpense, Description: "   "},
			wantCode:  domainerror.ErrCodeMissingDescription,
		},
		{
			name:      "service not configured",
			repo:      &fakeTypeRepo{types: []*entity.CategoryType{food}},
			suggester: &fakeSuggester{available: false},
			input:     validInput,
			wantCode:  domainerror.ErrCodeSuggestionUnavailable,
		},
		{
			name:      "no candidate types",
			repo:      &fakeTypeRepo{},
			suggester: &fakeSuggester{available: true},
			input:     validInput,
			wantCode:  domainerror.ErrCodeNoTypesToSuggest,
		},
		{
			name:      "provider failure",
			repo:      &fakeTypeRepo{types: []*entity.CategoryType{food}},
			suggester: &fakeSuggester{available: true, err: errors.New("quota exceeded")},
			input:     validInput,
			wantCode:  domainerror.ErrCodeSuggestionFailed,
		},
		{
			name: "provider picks unknown type",
			repo: &fakeTypeRepo{types: []*entity.CategoryType{food}},
			suggester: &fakeSuggester{
				available: true,
				result:    &adapter.CategorySuggestion{TypeID: uuid.New(), Confidence: 1},
			},
			input:    validInput,
			wantCode: domainerror.ErrCodeSuggestionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSuggestCategoryUseCase(tt.repo, tt.suggester)
			_, err := uc.Execute(context.Background(), tt.input)

			var sugErr *domainerror.SuggestionError
			if !errors.As(err, &sugErr) {
				t.Fatalf("expected SuggestionError, got %v", err)
			}
			if sugErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", sugErr.Code, tt.wantCode)
			}
		})
	}
}
