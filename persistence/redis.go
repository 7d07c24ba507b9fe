package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/circuitbreaker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "storefront:%s"

func InitRedis(addr, password string, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established")
	return rdb, nil
}

// Redis is a Gateway backed by a Redis instance. Calls go through a circuit
// breaker; while the circuit is open, reads degrade to "absent" so the auth
// store falls back to its empty defaults instead of failing hydration.
type Redis struct {
	client  *redis.Client
	breaker *circuitbreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewRedis(client *redis.Client, logger *zap.Logger) *Redis {
	return &Redis{
		client:  client,
		breaker: circuitbreaker.NewCircuitBreaker(5, 30*time.Second),
		logger:  logger,
	}
}

func storeKey(key string) string {
	return fmt.Sprintf(keyPrefix, key)
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.breaker.Execute(ctx, func() error {
		data, err := r.client.Get(ctx, storeKey(key)).Bytes()
		if err != nil {
			return err
		}
		value = data
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		r.logger.Warn("Persistence circuit open, treating key as absent", zap.String("key", key))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	err := r.breaker.Execute(ctx, func() error {
		return r.client.Set(ctx, storeKey(key), value, 0).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	err := r.breaker.Execute(ctx, func() error {
		return r.client.Del(ctx, storeKey(key)).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
