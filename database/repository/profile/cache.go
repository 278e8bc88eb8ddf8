package profileRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gymnexa/models"
	"gymnexa/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "profile:"

func cacheKey(uid string) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, uid)
}

// CachedProfileRepo is a read-through Redis cache in front of another repository.
// Writes go to the inner repository first and then drop the cached entry.
type CachedProfileRepo struct {
	inner  ProfileRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedProfileRepo(inner ProfileRepository, client *redis.Client, ttl time.Duration) ProfileRepository {
	return &CachedProfileRepo{inner: inner, client: client, ttl: ttl}
}

func (r *CachedProfileRepo) Configured() bool { return r.inner.Configured() }

func (r *CachedProfileRepo) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	val, err := r.client.Get(ctx, cacheKey(uid)).Bytes()
	if err == nil {
		var profile models.UserProfile
		if err := json.Unmarshal(val, &profile); err == nil {
			return &profile, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		utils.GetLogger().Warn("profile cache read failed", zap.String("uid", uid), zap.Error(err))
	}

	profile, err := r.inner.Get(ctx, uid)
	if err != nil || profile == nil {
		return profile, err
	}
	if data, err := json.Marshal(profile); err == nil {
		if err := r.client.Set(ctx, cacheKey(uid), data, r.ttl).Err(); err != nil {
			utils.GetLogger().Warn("profile cache write failed", zap.String("uid", uid), zap.Error(err))
		}
	}
	return profile, nil
}

func (r *CachedProfileRepo) Create(ctx context.Context, profile *models.UserProfile) error {
	if err := r.inner.Create(ctx, profile); err != nil {
		return err
	}
	r.invalidate(ctx, profile.UID)
	return nil
}

func (r *CachedProfileRepo) Update(ctx context.Context, uid string, update models.ProfileUpdate) error {
	if err := r.inner.Update(ctx, uid, update); err != nil {
		return err
	}
	r.invalidate(ctx, uid)
	return nil
}

func (r *CachedProfileRepo) invalidate(ctx context.Context, uid string) {
	if err := r.client.Del(ctx, cacheKey(uid)).Err(); err != nil {
		utils.GetLogger().Warn("profile cache invalidation failed", zap.String("uid", uid), zap.Error(err))
	}
}
