package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis so they survive restarts and
// are shared across instances. Expiry is delegated to Redis TTLs.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(ctx context.Context, addr, password string, db int) (*RedisSessionStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Fail fast at boot, not at request time
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %v", err)
	}
	return &RedisSessionStore{rdb: rdb}, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("error storing session: %v", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrInvalidSession
	}
	if err != nil {
		return "", fmt.Errorf("error looking up session: %v", err)
	}
	return userID, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("error deleting session: %v", err)
	}
	return nil
}

func (s *RedisSessionStore) Close() error {
	return s.rdb.Close()
}
