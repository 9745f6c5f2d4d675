package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyNamespace = "sf"

// RedisOptions configures the redis-backed store.
type RedisOptions struct {
	URL          string
	Address      string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type redisCmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// RedisStore persists values in a shared Redis instance under a fixed
// namespace.
type RedisStore struct {
	store redisCmdable
	raw   *redis.Client
}

// NewRedisStore bootstraps a Redis client with pooling/timeouts and verifies
// connectivity.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	clientOpts, err := redisOptions(opts)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(clientOpts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{store: raw, raw: raw}, nil
}

func redisOptions(opts RedisOptions) (*redis.Options, error) {
	if url := strings.TrimSpace(opts.URL); url != "" {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		applyRedisTuning(parsed, opts)
		return parsed, nil
	}
	if strings.TrimSpace(opts.Address) == "" {
		return nil, fmt.Errorf("redis address or url required")
	}
	clientOpts := &redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	}
	applyRedisTuning(clientOpts, opts)
	return clientOpts, nil
}

func applyRedisTuning(clientOpts *redis.Options, opts RedisOptions) {
	if opts.PoolSize > 0 {
		clientOpts.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		clientOpts.MinIdleConns = opts.MinIdleConns
	}
	if opts.DialTimeout > 0 {
		clientOpts.DialTimeout = opts.DialTimeout
	}
	if opts.ReadTimeout > 0 {
		clientOpts.ReadTimeout = opts.ReadTimeout
	}
	if opts.WriteTimeout > 0 {
		clientOpts.WriteTimeout = opts.WriteTimeout
	}
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.store.Get(ctx, namespacedKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := r.store.Set(ctx, namespacedKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.store.Del(ctx, namespacedKey(key)).Err(); err != nil {
		return fmt.Errorf("del %q: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.store.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	if r.raw == nil {
		return nil
	}
	return r.raw.Close()
}

func namespacedKey(key string) string {
	return keyNamespace + ":" + key
}
