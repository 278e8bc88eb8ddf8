package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gymnexa/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("session: not found or expired")

// Store persists sessions between requests.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions as JSON with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func key(id string) string {
	return utils.SessionPrefix + id
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		utils.GetLogger().Error("Failed to get session", zap.String("sessionID", id), zap.Error(err))
		return nil, fmt.Errorf("load session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		utils.GetLogger().Error("Failed to unmarshal session", zap.String("sessionID", id), zap.Error(err))
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Save writes s and resets its TTL.
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, key(s.ID), data, r.ttl).Err(); err != nil {
		utils.GetLogger().Error("Failed to save session", zap.String("sessionID", s.ID), zap.Error(err))
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		utils.GetLogger().Error("Failed to delete session", zap.String("sessionID", id), zap.Error(err))
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
