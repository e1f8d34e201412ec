package redis

import (
	"HeidiCore/internal/api/config"
	"HeidiCore/internal/pkg/logger"
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// Client wraps the redis connection handle. It is constructed once at
// startup and injected everywhere redis is needed.
type Client struct {
	rdb *redis.Client
}

// New opens a redis connection and verifies connectivity.
func New(cfg config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})

	rdb.AddHook(logger.NewRedisLogger())

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb}, nil
}
