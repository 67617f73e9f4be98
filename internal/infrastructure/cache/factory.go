package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/pos/backend/internal/domain/studio"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// WelcomeCache is the cache contract shared by the Redis and in-memory stores
type WelcomeCache interface {
	Get(ctx context.Context) ([]studio.Section, bool, error)
	Set(ctx context.Context, sections []studio.Section) error
	Invalidate(ctx context.Context) error
}

// WelcomeCacheFactory creates the welcome cache based on configuration
type WelcomeCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// WelcomeCacheFactoryOption is a functional option for configuring the factory
type WelcomeCacheFactoryOption func(*WelcomeCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) WelcomeCacheFactoryOption {
	return func(f *WelcomeCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to memory.
// Default is true.
func WithInMemoryFallback(allow bool) WelcomeCacheFactoryOption {
	return func(f *WelcomeCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewWelcomeCacheFactory creates a new factory
func NewWelcomeCacheFactory(cfg config.RedisConfig, opts ...WelcomeCacheFactoryOption) *WelcomeCacheFactory {
	f := &WelcomeCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Create returns a Redis cache when Redis is enabled and reachable, otherwise
// an in-memory cache. The returned close function releases the Redis client.
func (f *WelcomeCacheFactory) Create() (WelcomeCache, func() error, error) {
	noop := func() error { return nil }

	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory welcome cache")
		return NewInMemoryWelcomeCache(f.redisConfig.CacheTTL), noop, nil
	}

	client, err := NewRedisClient(f.redisConfig)
	if err == nil {
		f.logger.Info("using Redis welcome cache", zap.String("addr", f.redisConfig.Addr()))
		return NewRedisWelcomeCache(client, f.redisConfig.KeyPrefix, f.redisConfig.CacheTTL), client.Close, nil
	}

	if !f.allowInMemoryFallback {
		return nil, noop, fmt.Errorf("Redis required for welcome cache but unavailable: %w", err)
	}
	f.logger.Warn("Redis unavailable, falling back to in-memory welcome cache. "+
		"Page edits made on other instances will show after the cache TTL.",
		zap.Error(err),
	)
	return NewInMemoryWelcomeCache(f.redisConfig.CacheTTL), noop, nil
}

var (
	_ WelcomeCache = (*RedisWelcomeCache)(nil)
	_ WelcomeCache = (*InMemoryWelcomeCache)(nil)
)
