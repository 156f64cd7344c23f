package db

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/integration/persistence/model"
)

var globalExpenseTypes = []string{
	"Alimentación",
	"Transporte",
	"Vivienda",
	"Servicios",
	"Salud",
	"Educación",
	"Entretenimiento",
	"Ropa",
	"Otros",
}

var globalIncomeTypes = []string{
	"Salario",
	"Freelance",
	"Inversiones",
	"Alquileres",
	"Bonos",
	"Regalo",
	"Otros",
}

type demoUser struct {
	name     string
	lastname string
	email    string
	password string
}

var demoUsers = []demoUser{
	{name: "Usuario", lastname: "Demo", email: "demo@example.com", password: "Password123!"},
	{name: "Admin", lastname: "Sistema", email: "admin@example.com", password: "Admin123!"},
}

// Seed populates the database with the global category types and demo users.
// Each dataset is only written when its table has no rows of that kind yet,
// so running the seed repeatedly is safe.
func Seed(db *gorm.DB, passwordService adapter.PasswordService) error {
	if err := seedCategoryTypes(db, entity.RecordKindExpense, globalExpenseTypes); err != nil {
		return err
	}
	if err := seedCategoryTypes(db, entity.RecordKindIncome, globalIncomeTypes); err != nil {
		return err
	}
	return seedUsers(db, passwordService)
}

func seedCategoryTypes(db *gorm.DB, kind entity.RecordKind, names []string) error {
	var count int64
	if err := db.Model(&model.CategoryTypeModel{}).
		Where("kind = ?", string(kind)).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count %s category types: %w", kind, err)
	}

	if count > 0 {
		slog.Info("category types already seeded, skipping", "kind", kind, "count", count)
		return nil
	}

	models := make([]model.CategoryTypeModel, 0, len(names))
	for _, name := range names {
		models = append(models, *model.CategoryTypeFromEntity(entity.NewGlobalCategoryType(name, kind)))
	}

	if err := db.Create(&models).Error; err != nil {
		return fmt.Errorf("failed to seed %s category types: %w", kind, err)
	}

	slog.Info("seeded global category types", "kind", kind, "count", len(models))
	return nil
}

func seedUsers(db *gorm.DB, passwordService adapter.PasswordService) error {
	for _, seed := range demoUsers {
		var count int64
		if err := db.Model(&model.UserModel{}).
			Where("email = ?", seed.email).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check seed user %s: %w", seed.email, err)
		}
		if count > 0 {
			continue
		}

		hash, err := passwordService.HashPassword(seed.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", seed.email, err)
		}

		user := entity.NewUser(seed.email, seed.name, seed.lastname, hash)
		if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", seed.email, err)
		}

		slog.Info("seeded demo user", "email", seed.email)
	}

	return nil
}
