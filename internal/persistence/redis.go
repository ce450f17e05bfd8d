package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/helpdesk-br/chamados-api/internal/config"
)

// Redis wraps the go-redis client. A nil or unreachable client degrades to
// cache misses rather than failing requests.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// Get fetches a cached value. Returns ok=false on miss or any cache fault.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	if r == nil || r.Client == nil {
		return nil, false
	}
	val, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores a value with a TTL, ignoring cache faults.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Set(ctx, key, value, ttl).Err()
}

// Delete drops a key, ignoring cache faults.
func (r *Redis) Delete(ctx context.Context, key string) {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Del(ctx, key).Err()
}
