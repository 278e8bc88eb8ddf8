// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"gymnexa/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient is the Redis client holding member sessions.
	SessionClient *redis.Client
	// CacheClient is the Redis client for the profile read cache.
	CacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

// InitRedis initializes the session and cache Redis clients and verifies the connection.
func InitRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	session := newRedisClient(config.AppConfig.RedisSessionDB)
	if _, err := session.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis (sessions): %w", err)
	}
	cache := newRedisClient(config.AppConfig.RedisCacheDB)
	if _, err := cache.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis (cache): %w", err)
	}
	SessionClient = session
	CacheClient = cache
	return nil
}

// PingRedis is a health probe for the session store.
func PingRedis(ctx context.Context) error {
	if SessionClient == nil {
		return fmt.Errorf("redis client not initialized")
	}
	return SessionClient.Ping(ctx).Err()
}

// CloseRedis closes both clients.
func CloseRedis() {
	for _, c := range []*redis.Client{SessionClient, CacheClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}

// GetSessionClient returns the session Redis client.
func GetSessionClient() *redis.Client {
	return SessionClient
}

// GetCacheClient returns the cache Redis client.
func GetCacheClient() *redis.Client {
	return CacheClient
}
