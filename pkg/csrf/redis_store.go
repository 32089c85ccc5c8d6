package csrf

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKeyPrefix prefixes the per-session sorted set keys.
const DefaultRedisKeyPrefix = "csrf:"

// RedisStore implements Store with one sorted set per session. Members are
// tokens, scores their expiry in Unix milliseconds.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisKeyPrefix overrides DefaultRedisKeyPrefix.
func WithRedisKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a RedisStore over client. Panics on a nil client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	if client == nil {
		panic("csrf: redis client is required")
	}
	s := &RedisStore{
		client: client,
		prefix: DefaultRedisKeyPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Add(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if err := validateAdd(sessionID, token, ttl); err != nil {
		return err
	}

	key := s.key(sessionID)
	now := s.now()

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(now.UnixMilli(), 10))
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  float64(now.Add(ttl).UnixMilli()),
			Member: token,
		})
		// The newest token always expires last, so the key can follow it.
		pipe.PExpire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *RedisStore) Tokens(ctx context.Context, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, nil
	}

	tokens, err := s.client.ZRangeByScore(ctx, s.key(sessionID), &redis.ZRangeBy{
		Min: "(" + strconv.FormatInt(s.now().UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}
	return tokens, nil
}

func (s *RedisStore) Remove(ctx context.Context, sessionID, token string) error {
	if err := s.client.ZRem(ctx, s.key(sessionID), token).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}
