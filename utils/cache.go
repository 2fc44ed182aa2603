// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"overture/config"
)

var (
	// DiaryCacheClient caches rendered diary views.
	DiaryCacheClient *redis.Client
	// TariffCacheClient caches hall tariff lookups.
	TariffCacheClient *redis.Client
)

// InitDiaryCache initializes the Redis client used for diary view caching.
func InitDiaryCache() {
	DiaryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDiaryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DiaryCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Diary Cache): %v", err)
	}
}

// GetDiaryCacheClient returns the diary cache client.
func GetDiaryCacheClient() *redis.Client {
	if DiaryCacheClient == nil {
		InitDiaryCache()
	}
	return DiaryCacheClient
}

// InitTariffCache initializes the Redis client used for tariff caching.
func InitTariffCache() {
	TariffCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTariffDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := TariffCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Tariff Cache): %v", err)
	}
}

// GetTariffCacheClient returns the tariff cache client.
func GetTariffCacheClient() *redis.Client {
	if TariffCacheClient == nil {
		InitTariffCache()
	}
	return TariffCacheClient
}
