package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookmate/backend/internal/application/adapter"
	domainerror "github.com/bookmate/backend/internal/domain/error"
)

// DeleteEntryInput represents the entry to delete.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	OwnerID uuid.UUID
}

// DeleteEntryUseCase deletes a ledger entry after an ownership check.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{entryRepo: entryRepo}
}

// Execute deletes the entry.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	existing, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return err
	}
	if existing.OwnerID != input.OwnerID {
		return domainerror.NewEntryError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"entry belongs to another user",
			domainerror.ErrNotAuthorizedEntry,
		)
	}

	if err := uc.entryRepo.Delete(ctx, input.EntryID); err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	return nil
}
