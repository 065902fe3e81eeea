// Package cache provides Redis-backed caching for option catalogs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/domain/entity"
)

const optionKeyPrefix = "bookmate:options:"

// optionCache implements adapter.OptionCache on top of Redis. Cached sets
// expire after the configured TTL so a stale cache heals itself even if an
// invalidation is lost.
type optionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOptionCache creates a Redis-backed option cache.
func NewOptionCache(client *redis.Client, ttl time.Duration) adapter.OptionCache {
	return &optionCache{
		client: client,
		ttl:    ttl,
	}
}

// cachedOptionSet is the JSON shape stored in Redis.
type cachedOptionSet struct {
	ID        string              `json:"id"`
	Field     string              `json:"field"`
	Values    []string            `json:"values"`
	Keywords  map[string][]string `json:"keywords,omitempty"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Get retrieves a cached option set, or nil on a miss.
func (c *optionCache) Get(ctx context.Context, field entity.OptionField) (*entity.OptionSet, error) {
	payload, err := c.client.Get(ctx, optionKey(field)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read option cache: %w", err)
	}

	var cached cachedOptionSet
	if err := json.Unmarshal(payload, &cached); err != nil {
		// A corrupt entry is treated as a miss so the repository can repopulate it.
		return nil, nil
	}
	return cached.toEntity()
}

// Set stores an option set under its field key.
func (c *optionCache) Set(ctx context.Context, set *entity.OptionSet) error {
	payload, err := json.Marshal(cachedOptionSet{
		ID:        set.ID.String(),
		Field:     string(set.Field),
		Values:    set.Values,
		Keywords:  set.Keywords,
		UpdatedAt: set.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal option set: %w", err)
	}

	if err := c.client.Set(ctx, optionKey(set.Field), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write option cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached option set for a field.
func (c *optionCache) Invalidate(ctx context.Context, field entity.OptionField) error {
	if err := c.client.Del(ctx, optionKey(field)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate option cache: %w", err)
	}
	return nil
}

func (c cachedOptionSet) toEntity() (*entity.OptionSet, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		// A corrupt ID is treated as a miss.
		return nil, nil
	}
	return &entity.OptionSet{
		ID:        id,
		Field:     entity.OptionField(c.Field),
		Values:    c.Values,
		Keywords:  c.Keywords,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func optionKey(field entity.OptionField) string {
	return optionKeyPrefix + string(field)
}
