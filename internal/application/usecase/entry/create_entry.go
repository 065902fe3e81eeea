// Package entry contains ledger entry use cases.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/domain/entity"
)

// CreateEntryInput represents a confirmed entry draft to store.
type CreateEntryInput struct {
	OwnerID         uuid.UUID
	Date            time.Time
	Property        string
	TypeOfOperation string
	TypeOfPayment   string
	Detail          string
	Ref             string
	Debit           decimal.Decimal
	Credit          decimal.Decimal
}

// CreateEntryOutput represents the stored entry.
type CreateEntryOutput struct {
	Entry *entity.LedgerEntry
}

// CreateEntryUseCase stores confirmed ledger entries.
type CreateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(entryRepo adapter.EntryRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{entryRepo: entryRepo}
}

// Execute validates and stores the entry.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	ledgerEntry, err := entity.NewLedgerEntry(
		input.OwnerID,
		input.Date,
		input.Property,
		input.TypeOfOperation,
		input.TypeOfPayment,
		input.Detail,
		input.Ref,
		input.Debit,
		input.Credit,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, ledgerEntry); err != nil {
		return nil, fmt.Errorf("failed to store ledger entry: %w", err)
	}

	return &CreateEntryOutput{Entry: ledgerEntry}, nil
}
