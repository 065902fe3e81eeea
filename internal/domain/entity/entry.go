// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/bookmate/backend/internal/domain/error"
)

// LedgerEntry represents one confirmed bookkeeping record. Exactly one of
// Debit/Credit carries the amount; the other is zero.
type LedgerEntry struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Date            time.Time
	Property        string
	TypeOfOperation string
	TypeOfPayment   string
	Detail          string
	Ref             string
	Debit           decimal.Decimal
	Credit          decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewLedgerEntry creates a new LedgerEntry entity after validating the
// amount columns.
func NewLedgerEntry(
	ownerID uuid.UUID,
	date time.Time,
	property, operation, payment, detail, ref string,
	debit, credit decimal.Decimal,
) (*LedgerEntry, error) {
	if debit.IsNegative() || credit.IsNegative() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryInvalidAmount,
			"amounts must not be negative",
			domainerror.ErrEntryInvalidAmount,
		)
	}
	if debit.IsZero() == credit.IsZero() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryInvalidAmount,
			"exactly one of debit and credit must carry the amount",
			domainerror.ErrEntryInvalidAmount,
		)
	}
	if property == "" || operation == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryMissingFields,
			"property and operation type are required",
			domainerror.ErrEntryMissingFields,
		)
	}

	now := time.Now().UTC()
	return &LedgerEntry{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Date:            date,
		Property:        property,
		TypeOfOperation: operation,
		TypeOfPayment:   payment,
		Detail:          detail,
		Ref:             ref,
		Debit:           debit,
		Credit:          credit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// IsCredit reports whether the entry posts on the credit (income) side.
func (e *LedgerEntry) IsCredit() bool {
	return !e.Credit.IsZero()
}
