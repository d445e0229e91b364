package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"board-automation-api/internal/config"
)

// NewRedis connects a redis client for the role-assignment cache. A redis://
// URL takes precedence over host/port fields.
func NewRedis(cfg config.RedisConfig, log *zap.Logger) (*redis.Client, error) {
	var client *redis.Client

	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	log.Info("Redis connection established",
		zap.String("addr", client.Options().Addr),
		zap.Int("db", cfg.DB),
	)
	return client, nil
}
