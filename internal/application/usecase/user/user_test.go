package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(context.Background(), email)
	return err == nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	existing := entity.NewUser("ana@example.com", "Ana", "Ruiz", "hashed:SuperSecret123")
	repo.users[existing.ID] = existing

	uc := NewGetUserUseCase(repo)

	t.Run("returns the profile", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetUserInput{UserID: existing.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "ana@example.com" {
			t.Errorf("got email %q", output.User.Email)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetUserInput{UserID: uuid.New()})
		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) || userErr.Code != domainerror.ErrCodeUserNotFound {
			t.Fatalf("expected user not found, got %v", err)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeUserRepo, *entity.User, *UpdateUserUseCase) {
		repo := newFakeUserRepo()
		existing := entity.NewUser("ana@example.com", "Ana", "Ruiz", "hashed:OldPassword1")
		repo.users[existing.ID] = existing
		return repo, existing, NewUpdateUserUseCase(repo, fakePasswordService{})
	}

	t.Run("patches only the provided fields", func(t *testing.T) {
		repo, existing, uc := setup()

		newName := "Anabel"
		output, err := uc.Execute(ctx, UpdateUserInput{UserID: existing.ID, Name: &newName})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.Name != "Anabel" {
			t.Errorf("name not updated, got %q", output.User.Name)
		}
		if output.User.Lastname != "Ruiz" {
			t.Errorf("lastname changed unexpectedly to %q", output.User.Lastname)
		}
		if repo.users[existing.ID].PasswordHash != "hashed:OldPassword1" {
			t.Error("password changed without being provided")
		}
	})

	t.Run("re-hashes a new password", func(t *testing.T) {
		repo, existing, uc := setup()

		newPassword := "BrandNewSecret1"
		_, err := uc.Execute(ctx, UpdateUserInput{UserID: existing.ID, Password: &newPassword})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.users[existing.ID].PasswordHash != "hashed:BrandNewSecret1" {
			t.Errorf("password not re-hashed, got %q", repo.users[existing.ID].PasswordHash)
		}
	})

	t.Run("rejects a weak new password", func(t *testing.T) {
		repo, existing, uc := setup()

		weak := "short"
		_, err := uc.Execute(ctx, UpdateUserInput{UserID: existing.ID, Password: &weak})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Fatalf("expected weak password error, got %v", err)
		}
		if repo.users[existing.ID].PasswordHash != "hashed:OldPassword1" {
			t.Error("password changed despite failed validation")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, uc := setup()

		name := "Nobody"
		_, err := uc.Execute(ctx, UpdateUserInput{UserID: uuid.New(), Name: &name})
		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) || userErr.Code != domainerror.ErrCodeUserNotFound {
			t.Fatalf("expected user not found, got %v", err)
		}
	})
}
