package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pos/backend/internal/domain/studio"
	"github.com/redis/go-redis/v9"
)

// welcomeKey holds the serialized welcome sections
const welcomeKey = "studio:welcome"

// DefaultWelcomeTTL bounds staleness if an invalidation is ever missed
const DefaultWelcomeTTL = 10 * time.Minute

// RedisWelcomeCache stores the welcome sections in Redis so every instance
// sees an invalidation made by any of them
type RedisWelcomeCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisWelcomeCache wraps an existing client. keyPrefix namespaces the key.
func NewRedisWelcomeCache(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisWelcomeCache {
	if ttl <= 0 {
		ttl = DefaultWelcomeTTL
	}
	return &RedisWelcomeCache{
		client: client,
		key:    keyPrefix + welcomeKey,
		ttl:    ttl,
	}
}

// Get returns the cached sections. A miss is (nil, false, nil).
func (c *RedisWelcomeCache) Get(ctx context.Context) ([]studio.Section, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read welcome cache: %w", err)
	}

	var sections []studio.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		// a corrupt entry behaves like a miss and is overwritten on the next Set
		return nil, false, nil
	}
	return sections, true, nil
}

// Set stores sections with the configured TTL
func (c *RedisWelcomeCache) Set(ctx context.Context, sections []studio.Section) error {
	data, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("failed to encode welcome sections: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write welcome cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached sections
func (c *RedisWelcomeCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate welcome cache: %w", err)
	}
	return nil
}

// Key returns the Redis key in use
func (c *RedisWelcomeCache) Key() string {
	return c.key
}

// InMemoryWelcomeCache keeps the welcome sections in process memory.
// Suitable for single-instance deployments and tests.
type InMemoryWelcomeCache struct {
	mu        sync.RWMutex
	sections  []studio.Section
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewInMemoryWelcomeCache creates an empty in-memory cache
func NewInMemoryWelcomeCache(ttl time.Duration) *InMemoryWelcomeCache {
	if ttl <= 0 {
		ttl = DefaultWelcomeTTL
	}
	return &InMemoryWelcomeCache{ttl: ttl, now: time.Now}
}

// Get returns a copy of the cached sections
func (c *InMemoryWelcomeCache) Get(_ context.Context) ([]studio.Section, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.sections == nil || !c.now().Before(c.expiresAt) {
		return nil, false, nil
	}
	out := make([]studio.Section, len(c.sections))
	copy(out, c.sections)
	return out, true, nil
}

// Set stores a copy of sections
func (c *InMemoryWelcomeCache) Set(_ context.Context, sections []studio.Section) error {
	stored := make([]studio.Section, len(sections))
	copy(stored, sections)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sections = stored
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

// Invalidate drops the cached sections
func (c *InMemoryWelcomeCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sections = nil
	return nil
}
