package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/bookmate/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *optionCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &optionCache{client: client, ttl: time.Minute}
}

func TestOptionCacheRoundTrip(t *testing.T) {
	_, c := newTestCache(t)
	ctx := context.Background()

	set := entity.NewOptionSet(entity.OptionFieldPayment,
		[]string{"Cash", "Bank Transfer"},
		map[string][]string{"Bank Transfer": {"transfer", "wire"}},
	)
	if err := c.Set(ctx, set); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := c.Get(ctx, entity.OptionFieldPayment)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cache hit")
	}
	if got.ID != set.ID || got.Field != set.Field {
		t.Errorf("got %v/%s, want %v/%s", got.ID, got.Field, set.ID, set.Field)
	}
	if len(got.Values) != 2 || got.Values[1] != "Bank Transfer" {
		t.Errorf("Values = %v", got.Values)
	}
	if len(got.Keywords["Bank Transfer"]) != 2 {
		t.Errorf("Keywords = %v", got.Keywords)
	}
}

func TestOptionCacheMiss(t *testing.T) {
	_, c := newTestCache(t)

	got, err := c.Get(context.Background(), entity.OptionFieldProperty)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil on a miss", got)
	}
}

func TestOptionCacheCorruptEntryIsAMiss(t *testing.T) {
	mr, c := newTestCache(t)
	if err := mr.Set(optionKey(entity.OptionFieldProperty), "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	got, err := c.Get(context.Background(), entity.OptionFieldProperty)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil for a corrupt entry", got)
	}
}

func TestOptionCacheInvalidate(t *testing.T) {
	_, c := newTestCache(t)
	ctx := context.Background()

	set := entity.NewOptionSet(entity.OptionFieldOperation, []string{"Revenue - Rental"}, nil)
	if err := c.Set(ctx, set); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Invalidate(ctx, entity.OptionFieldOperation); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}

	got, err := c.Get(ctx, entity.OptionFieldOperation)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Error("expected a miss after invalidation")
	}
}

func TestOptionCacheExpiry(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	set := entity.NewOptionSet(entity.OptionFieldPayment, []string{"Cash"}, nil)
	if err := c.Set(ctx, set); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, entity.OptionFieldPayment)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Error("expected the entry to expire")
	}
}
