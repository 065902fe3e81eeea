package options

import (
	"context"
	"errors"
	"testing"

	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
)

// fakeOptionRepo is an in-memory adapter.OptionRepository.
type fakeOptionRepo struct {
	sets      map[entity.OptionField]*entity.OptionSet
	findCalls int
	failWith  error
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{sets: make(map[entity.OptionField]*entity.OptionSet)}
}

func (r *fakeOptionRepo) FindByField(_ context.Context, field entity.OptionField) (*entity.OptionSet, error) {
	r.findCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	set, ok := r.sets[field]
	if !ok {
		return nil, domainerror.ErrOptionSetNotFound
	}
	return set, nil
}

func (r *fakeOptionRepo) FindAll(_ context.Context) ([]*entity.OptionSet, error) {
	var out []*entity.OptionSet
	for _, s := range r.sets {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeOptionRepo) Replace(_ context.Context, set *entity.OptionSet) error {
	r.sets[set.Field] = set
	return nil
}

func (r *fakeOptionRepo) EnsureDefaults(_ context.Context) error {
	return nil
}

// fakeOptionCache is an in-memory adapter.OptionCache.
type fakeOptionCache struct {
	entries     map[entity.OptionField]*entity.OptionSet
	invalidated []entity.OptionField
}

func newFakeOptionCache() *fakeOptionCache {
	return &fakeOptionCache{entries: make(map[entity.OptionField]*entity.OptionSet)}
}

func (c *fakeOptionCache) Get(_ context.Context, field entity.OptionField) (*entity.OptionSet, error) {
	return c.entries[field], nil
}

func (c *fakeOptionCache) Set(_ context.Context, set *entity.OptionSet) error {
	c.entries[set.Field] = set
	return nil
}

func (c *fakeOptionCache) Invalidate(_ context.Context, field entity.OptionField) error {
	c.invalidated = append(c.invalidated, field)
	delete(c.entries, field)
	return nil
}

func TestGetOptionsReadThrough(t *testing.T) {
	repo := newFakeOptionRepo()
	cache := newFakeOptionCache()
	stored := entity.NewOptionSet(entity.OptionFieldPayment, []string{"Cash", "Crypto"}, nil)
	repo.sets[entity.OptionFieldPayment] = stored

	uc := NewGetOptionsUseCase(repo, cache)

	out, err := uc.Execute(context.Background(), GetOptionsInput{Field: entity.OptionFieldPayment})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Set != stored {
		t.Error("expected the stored set to be returned")
	}
	if cache.entries[entity.OptionFieldPayment] != stored {
		t.Error("expected the set to be cached after the first read")
	}

	// Second read must come from the cache.
	if _, err := uc.Execute(context.Background(), GetOptionsInput{Field: entity.OptionFieldPayment}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.findCalls != 1 {
		t.Errorf("repo hit %d times, want 1", repo.findCalls)
	}
}

func TestGetOptionsFallsBackToDefaults(t *testing.T) {
	uc := NewGetOptionsUseCase(newFakeOptionRepo(), nil)

	out, err := uc.Execute(context.Background(), GetOptionsInput{Field: entity.OptionFieldProperty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Set.Values) == 0 {
		t.Fatal("expected built-in default values")
	}
	if out.Set.Values[0] != "Sia Moon - Land - General" {
		t.Errorf("first default = %q, want Sia Moon - Land - General", out.Set.Values[0])
	}
}

func TestGetOptionsUnknownField(t *testing.T) {
	uc := NewGetOptionsUseCase(newFakeOptionRepo(), nil)

	_, err := uc.Execute(context.Background(), GetOptionsInput{Field: "color"})
	var optionErr *domainerror.OptionError
	if !errors.As(err, &optionErr) || optionErr.Code != domainerror.ErrCodeUnknownOptionField {
		t.Errorf("error = %v, want OPT unknown field error", err)
	}
}

func TestUpdateOptions(t *testing.T) {
	repo := newFakeOptionRepo()
	cache := newFakeOptionCache()
	uc := NewUpdateOptionsUseCase(repo, cache)

	t.Run("stores and invalidates", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), UpdateOptionsInput{
			Field:  entity.OptionFieldPayment,
			Values: []string{"Cash", "PromptPay"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.sets[entity.OptionFieldPayment] != out.Set {
			t.Error("expected the new set to be stored")
		}
		if len(cache.invalidated) != 1 || cache.invalidated[0] != entity.OptionFieldPayment {
			t.Errorf("invalidated = %v, want [payment]", cache.invalidated)
		}
	})

	t.Run("rejects empty values", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateOptionsInput{
			Field:  entity.OptionFieldPayment,
			Values: nil,
		})
		var optionErr *domainerror.OptionError
		if !errors.As(err, &optionErr) || optionErr.Code != domainerror.ErrCodeOptionValuesEmpty {
			t.Errorf("error = %v, want OPT empty values error", err)
		}
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateOptionsInput{
			Field:  "color",
			Values: []string{"red"},
		})
		var optionErr *domainerror.OptionError
		if !errors.As(err, &optionErr) || optionErr.Code != domainerror.ErrCodeUnknownOptionField {
			t.Errorf("error = %v, want OPT unknown field error", err)
		}
	})
}

func TestListOptions(t *testing.T) {
	uc := NewListOptionsUseCase(NewGetOptionsUseCase(newFakeOptionRepo(), nil))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []entity.OptionField{
		entity.OptionFieldProperty,
		entity.OptionFieldOperation,
		entity.OptionFieldPayment,
	} {
		if out.Sets[field] == nil {
			t.Errorf("missing set for field %q", field)
		}
	}
}
