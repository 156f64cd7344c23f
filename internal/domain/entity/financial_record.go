// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind discriminates between the two financial record variants.
// Expenses and incomes share the same shape but are stored and aggregated
// separately; they only meet at the balance calculation.
type RecordKind string

const (
	RecordKindExpense RecordKind = "expense"
	RecordKindIncome  RecordKind = "income"
)

// IsValid reports whether the kind is one of the known record kinds.
func (k RecordKind) IsValid() bool {
	return k == RecordKindExpense || k == RecordKindIncome
}

// FinancialRecord represents a single expense or income entry.
// Status means "paid" for expenses and "received" for incomes.
type FinancialRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TypeID      uuid.UUID
	Kind        RecordKind
	Description string
	Value       decimal.Decimal
	Status      bool
	Date        time.Time
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFinancialRecord creates a new FinancialRecord entity.
func NewFinancialRecord(
	userID, typeID uuid.UUID,
	kind RecordKind,
	description string,
	value decimal.Decimal,
	status bool,
	date time.Time,
	note string,
) *FinancialRecord {
	now := time.Now().UTC()
	return &FinancialRecord{
		ID:          uuid.New(),
		UserID:      userID,
		TypeID:      typeID,
		Kind:        kind,
		Description: description,
		Value:       value,
		Status:      status,
		Date:        date,
		Note:        note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RecordWithType pairs a financial record with its category type.
// Type is nil when the type was deleted after the record was created.
type RecordWithType struct {
	Record *FinancialRecord
	Type   *CategoryType
}
