package adapter

import (
	"context"

	"github.com/bookmate/backend/internal/domain/entity"
)

// OptionRepository defines the interface for option catalog persistence.
type OptionRepository interface {
	// FindByField retrieves the stored option set for one field.
	FindByField(ctx context.Context, field entity.OptionField) (*entity.OptionSet, error)

	// FindAll retrieves every stored option set.
	FindAll(ctx context.Context) ([]*entity.OptionSet, error)

	// Replace overwrites the option set for a field.
	Replace(ctx context.Context, set *entity.OptionSet) error

	// EnsureDefaults seeds the built-in option sets for any field that has
	// no stored set yet.
	EnsureDefaults(ctx context.Context) error
}

// OptionCache defines a read-through cache in front of the option repository.
// A nil result with a nil error is a cache miss.
type OptionCache interface {
	// Get retrieves a cached option set, or nil on a miss.
	Get(ctx context.Context, field entity.OptionField) (*entity.OptionSet, error)

	// Set stores an option set under its field key.
	Set(ctx context.Context, set *entity.OptionSet) error

	// Invalidate drops the cached option set for a field.
	Invalidate(ctx context.Context, field entity.OptionField) error
}
