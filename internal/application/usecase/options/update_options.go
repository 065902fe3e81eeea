package options

import (
	"context"
	"fmt"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
)

// UpdateOptionsInput represents the input for replacing one option set.
type UpdateOptionsInput struct {
	Field    entity.OptionField
	Values   []string
	Keywords map[string][]string
}

// UpdateOptionsOutput represents the stored option set after the update.
type UpdateOptionsOutput struct {
	Set *entity.OptionSet
}

// UpdateOptionsUseCase replaces the option set for a field and invalidates
// the cache entry.
type UpdateOptionsUseCase struct {
	optionRepo  adapter.OptionRepository
	optionCache adapter.OptionCache
}

// NewUpdateOptionsUseCase creates a new UpdateOptionsUseCase instance.
func NewUpdateOptionsUseCase(optionRepo adapter.OptionRepository, optionCache adapter.OptionCache) *UpdateOptionsUseCase {
	return &UpdateOptionsUseCase{
		optionRepo:  optionRepo,
		optionCache: optionCache,
	}
}

// Execute validates and stores the new option set.
func (uc *UpdateOptionsUseCase) Execute(ctx context.Context, input UpdateOptionsInput) (*UpdateOptionsOutput, error) {
	if !input.Field.IsValid() {
		return nil, domainerror.NewOptionError(
			domainerror.ErrCodeUnknownOptionField,
			fmt.Sprintf("unknown option field %q", input.Field),
			domainerror.ErrUnknownOptionField,
		)
	}
	if len(input.Values) == 0 {
		return nil, domainerror.NewOptionError(
			domainerror.ErrCodeOptionValuesEmpty,
			"option values must not be empty",
			domainerror.ErrOptionValuesEmpty,
		)
	}

	set := entity.NewOptionSet(input.Field, input.Values, input.Keywords)
	if err := uc.optionRepo.Replace(ctx, set); err != nil {
		return nil, fmt.Errorf("failed to replace option set: %w", err)
	}

	if uc.optionCache != nil {
		_ = uc.optionCache.Invalidate(ctx, input.Field)
	}

	return &UpdateOptionsOutput{Set: set}, nil
}
