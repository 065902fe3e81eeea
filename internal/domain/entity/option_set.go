package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookmate/backend/internal/domain/matching"
)

// OptionField identifies which categorical field an option set belongs to.
type OptionField string

const (
	OptionFieldProperty  OptionField = "property"
	OptionFieldOperation OptionField = "operation"
	OptionFieldPayment   OptionField = "payment"
)

// IsValid reports whether the field is one of the known option fields.
func (f OptionField) IsValid() bool {
	switch f {
	case OptionFieldProperty, OptionFieldOperation, OptionFieldPayment:
		return true
	}
	return false
}

// OptionSet is the stored catalog of valid values for one field, with an
// optional keyword dictionary used to boost fuzzy matches.
type OptionSet struct {
	ID        uuid.UUID
	Field     OptionField
	Values    []string
	Keywords  map[string][]string
	UpdatedAt time.Time
}

// NewOptionSet creates a new OptionSet entity.
func NewOptionSet(field OptionField, values []string, keywords map[string][]string) *OptionSet {
	return &OptionSet{
		ID:        uuid.New(),
		Field:     field,
		Values:    values,
		Keywords:  keywords,
		UpdatedAt: time.Now().UTC(),
	}
}

// Catalog converts the stored option set into a matching catalog.
func (s *OptionSet) Catalog() matching.OptionCatalog {
	return matching.OptionCatalog{
		Values:   s.Values,
		Keywords: s.Keywords,
	}
}

// DefaultOptionSet returns the built-in option set for a field, used to
// seed storage and as the fallback when nothing is stored yet.
func DefaultOptionSet(field OptionField) *OptionSet {
	var catalog matching.OptionCatalog
	switch field {
	case OptionFieldProperty:
		catalog = matching.DefaultPropertyCatalog()
	case OptionFieldOperation:
		catalog = matching.DefaultOperationCatalog()
	case OptionFieldPayment:
		catalog = matching.DefaultPaymentCatalog()
	default:
		return nil
	}
	return NewOptionSet(field, catalog.Values, catalog.Keywords)
}
