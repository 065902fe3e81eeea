// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bookmate/backend/internal/domain/entity"
)

// EntryRepository defines the interface for ledger entry persistence.
type EntryRepository interface {
	// Create stores a new ledger entry.
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindByMonth retrieves all entries for an owner within a calendar month.
	FindByMonth(ctx context.Context, ownerID uuid.UUID, year int, month time.Month) ([]*entity.LedgerEntry, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
