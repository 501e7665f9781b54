package redis

import (
	"context"
	"encoding"
	"errors"
	"time"

	"jobocr/common/cache"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	client *redis.Client
	opts   cache.Options
}

func New(opts cache.Options) *Cache {
	if opts.DefaultTTL == 0 {
		opts.DefaultTTL = cache.DefaultOptions().DefaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.RedisURL,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	})

	return &Cache{client: client, opts: opts}
}

func (c *Cache) key(key string) (string, error) {
	if key == "" {
		return "", cache.ErrInvalidKey
	}
	return c.opts.KeyPrefix + key, nil
}

// Ping checks that the server is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	k, err := c.key(key)
	if err != nil {
		return err
	}
	if ttl == 0 {
		ttl = c.opts.DefaultTTL
	}
	return c.client.Set(ctx, k, value, ttl).Err()
}

func (c *Cache) Get(ctx context.Context, key string, value interface{}) error {
	k, err := c.key(key)
	if err != nil {
		return err
	}
	val, err := c.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return cache.ErrNotFound
	}
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case *string:
		*v = string(val)
	case encoding.BinaryUnmarshaler:
		return v.UnmarshalBinary(val)
	default:
		return cache.ErrInvalidValue
	}

	return nil
}

func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	k, err := c.key(key)
	if err != nil {
		return false, err
	}
	n, err := c.client.Exists(ctx, k).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	k, err := c.key(key)
	if err != nil {
		return err
	}
	return c.client.Del(ctx, k).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// Connect returns a Redis-backed cache, or an in-process cache.Memory when the
// server does not answer a ping within the context deadline.
func Connect(ctx context.Context, opts cache.Options, logger *zap.Logger) cache.Cache {
	rc := New(opts)
	if err := rc.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable, using in-memory cache",
			zap.String("addr", opts.RedisURL),
			zap.Error(err),
		)
		_ = rc.Close()
		return cache.NewMemory(opts)
	}
	logger.Info("Using Redis cache", zap.String("addr", opts.RedisURL))
	return rc
}
