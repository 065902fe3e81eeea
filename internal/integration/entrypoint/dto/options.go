package dto

import (
	"github.com/bookmate/backend/internal/domain/entity"
)

// UpdateOptionsRequest represents the request body for replacing an option set.
type UpdateOptionsRequest struct {
	Values   []string            `json:"values" binding:"required,min=1"`
	Keywords map[string][]string `json:"keywords,omitempty"`
}

// OptionSetResponse represents one option catalog in API responses.
type OptionSetResponse struct {
	Field     string              `json:"field"`
	Values    []string            `json:"values"`
	Keywords  map[string][]string `json:"keywords,omitempty"`
	UpdatedAt string              `json:"updated_at"`
}

// OptionsResponse represents all option catalogs keyed by field.
type OptionsResponse struct {
	Properties OptionSetResponse `json:"properties"`
	Operations OptionSetResponse `json:"operations"`
	Payments   OptionSetResponse `json:"payments"`
}

// ToOptionSetResponse converts a domain OptionSet entity to a response DTO.
func ToOptionSetResponse(set *entity.OptionSet) OptionSetResponse {
	return OptionSetResponse{
		Field:     string(set.Field),
		Values:    set.Values,
		Keywords:  set.Keywords,
		UpdatedAt: set.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToOptionsResponse converts the option sets of all fields to a response DTO.
func ToOptionsResponse(sets map[entity.OptionField]*entity.OptionSet) OptionsResponse {
	return OptionsResponse{
		Properties: ToOptionSetResponse(sets[entity.OptionFieldProperty]),
		Operations: ToOptionSetResponse(sets[entity.OptionFieldOperation]),
		Payments:   ToOptionSetResponse(sets[entity.OptionFieldPayment]),
	}
}
