package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/domain/entity"
)

// ListEntriesInput represents the month to list entries for.
type ListEntriesInput struct {
	OwnerID uuid.UUID
	Year    int
	Month   time.Month
}

// ListEntriesOutput represents the entries of one month.
type ListEntriesOutput struct {
	Entries []*entity.LedgerEntry
}

// ListEntriesUseCase lists ledger entries by calendar month.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{entryRepo: entryRepo}
}

// Execute retrieves the entries.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.entryRepo.FindByMonth(ctx, input.OwnerID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return &ListEntriesOutput{Entries: entries}, nil
}
