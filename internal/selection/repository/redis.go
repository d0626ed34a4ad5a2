package repository

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"station_lookup_backend/internal/selection/domain"
	"station_lookup_backend/platform/apperr"
	"station_lookup_backend/platform/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "selection:"

// RedisStore keeps sessions as JSON strings under selection:{id}.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient builds a client from REDIS_URL.
func NewRedisClient(cfg config.SessionConfig) (*redis.Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	if cfg.GetRedisTLSInsecure() {
		if opt.TLSConfig != nil {
			opt.TLSConfig = opt.TLSConfig.Clone()
		} else {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.TLSConfig.InsecureSkipVerify = true
	}

	return redis.NewClient(opt), nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.State, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sessionNotFound("selection.RedisStore.Get")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "session store unavailable", err).WithOp("selection.RedisStore.Get")
	}

	var st domain.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "decode selection state", err)
	}
	return &st, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, st *domain.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "encode selection state", err)
	}
	if err := s.client.Set(ctx, keyPrefix+id, data, s.ttl).Err(); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "session store unavailable", err).WithOp("selection.RedisStore.Save")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "session store unavailable", err).WithOp("selection.RedisStore.Delete")
	}
	if n == 0 {
		return sessionNotFound("selection.RedisStore.Delete")
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ Store = (*RedisStore)(nil)
