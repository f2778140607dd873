package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// ConnectRedis returns nil when redis is not configured or unreachable; the
// API then runs without cache.
func ConnectRedis(ctx context.Context, cfg *Config) *redis.Client {
	var opt *redis.Options
	switch {
	case cfg.RedisURL != "":
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("Failed to parse Redis URL, running without cache")
			return nil
		}
		opt = parsed
	case cfg.RedisAddr != "":
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	default:
		log.Info("Redis not configured, running without cache")
		return nil
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Warn("Redis connection failed, running without cache")
		_ = client.Close()
		return nil
	}

	log.Info("Redis connected")
	return client
}

func CloseRedis(client *redis.Client) {
	if client != nil {
		_ = client.Close()
	}
}
