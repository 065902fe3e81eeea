package options

import (
	"context"

	"github.com/bookmate/backend/internal/domain/entity"
)

// ListOptionsOutput represents every option set, keyed by field.
type ListOptionsOutput struct {
	Sets map[entity.OptionField]*entity.OptionSet
}

// ListOptionsUseCase retrieves the option sets for all three fields.
type ListOptionsUseCase struct {
	getOptions *GetOptionsUseCase
}

// NewListOptionsUseCase creates a new ListOptionsUseCase instance.
func NewListOptionsUseCase(getOptions *GetOptionsUseCase) *ListOptionsUseCase {
	return &ListOptionsUseCase{getOptions: getOptions}
}

// Execute retrieves all option sets.
func (uc *ListOptionsUseCase) Execute(ctx context.Context) (*ListOptionsOutput, error) {
	fields := []entity.OptionField{
		entity.OptionFieldProperty,
		entity.OptionFieldOperation,
		entity.OptionFieldPayment,
	}

	sets := make(map[entity.OptionField]*entity.OptionSet, len(fields))
	for _, field := range fields {
		output, err := uc.getOptions.Execute(ctx, GetOptionsInput{Field: field})
		if err != nil {
			return nil, err
		}
		sets[field] = output.Set
	}

	return &ListOptionsOutput{Sets: sets}, nil
}
