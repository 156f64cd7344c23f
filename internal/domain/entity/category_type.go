// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType is a label attached to financial records, e.g. "Food".
// Global types are visible to every user; non-global types belong to a
// single user.
type CategoryType struct {
	ID        uuid.UUID
	Name      string
	Kind      RecordKind
	IsGlobal  bool
	UserID    *uuid.UUID // nil for global types
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategoryType creates a new user-scoped CategoryType entity.
func NewCategoryType(name string, kind RecordKind, userID uuid.UUID) *CategoryType {
	now := time.Now().UTC()
	return &CategoryType{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		IsGlobal:  false,
		UserID:    &userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewGlobalCategoryType creates a new globally visible CategoryType entity.
func NewGlobalCategoryType(name string, kind RecordKind) *CategoryType {
	now := time.Now().UTC()
	return &CategoryType{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		IsGlobal:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// VisibleTo reports whether the type is visible to the given user:
// global types always are, user types only to their owner.
func (t *CategoryType) VisibleTo(userID uuid.UUID) bool {
	if t.IsGlobal {
		return true
	}
	return t.UserID != nil && *t.UserID == userID
}
