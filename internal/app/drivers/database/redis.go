package database

import (
	"clinic-service/internal/app/config"
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when no address is configured; callers fall back
// to running without distributed locks.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	if driverConfig.Redis.Addr == "" {
		log.Warn("Redis address not configured, duplicate checks will run without locks")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     driverConfig.Redis.Addr,
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("Could not connect to Redis", zap.Error(err))
	}

	log.Info("Successfully connected to redis", zap.String("addr", driverConfig.Redis.Addr))
	return rdb
}
