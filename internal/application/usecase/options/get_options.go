// Package options contains option catalog use cases.
package options

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
)

// GetOptionsInput represents the input for retrieving one option set.
type GetOptionsInput struct {
	Field entity.OptionField
}

// GetOptionsOutput represents the retrieved option set.
type GetOptionsOutput struct {
	Set *entity.OptionSet
}

// GetOptionsUseCase retrieves the option set for a field through the cache.
type GetOptionsUseCase struct {
	optionRepo  adapter.OptionRepository
	optionCache adapter.OptionCache
}

// NewGetOptionsUseCase creates a new GetOptionsUseCase instance. The cache
// may be nil, in which case every read hits the repository.
func NewGetOptionsUseCase(optionRepo adapter.OptionRepository, optionCache adapter.OptionCache) *GetOptionsUseCase {
	return &GetOptionsUseCase{
		optionRepo:  optionRepo,
		optionCache: optionCache,
	}
}

// Execute retrieves the option set, falling back to the built-in defaults
// when nothing is stored for the field. Cache failures are not fatal.
func (uc *GetOptionsUseCase) Execute(ctx context.Context, input GetOptionsInput) (*GetOptionsOutput, error) {
	if !input.Field.IsValid() {
		return nil, domainerror.NewOptionError(
			domainerror.ErrCodeUnknownOptionField,
			fmt.Sprintf("unknown option field %q", input.Field),
			domainerror.ErrUnknownOptionField,
		)
	}

	if uc.optionCache != nil {
		if set, err := uc.optionCache.Get(ctx, input.Field); err == nil && set != nil {
			return &GetOptionsOutput{Set: set}, nil
		}
	}

	set, err := uc.optionRepo.FindByField(ctx, input.Field)
	if err != nil {
		if errors.Is(err, domainerror.ErrOptionSetNotFound) {
			return &GetOptionsOutput{Set: entity.DefaultOptionSet(input.Field)}, nil
		}
		return nil, fmt.Errorf("failed to load option set: %w", err)
	}

	if uc.optionCache != nil {
		_ = uc.optionCache.Set(ctx, set)
	}

	return &GetOptionsOutput{Set: set}, nil
}
