package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bike-shop/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const itemListKeyPrefix = "items_list_"

var ErrCacheMiss = errors.New("cache miss")

type ItemCache interface {
	GetList(ctx context.Context, normalized string) ([]models.Item, error)
	SetList(ctx context.Context, normalized string, items []models.Item) error
	Invalidate(ctx context.Context) error
}

func itemListKey(normalized string) string {
	return fmt.Sprintf("%sq%s", itemListKeyPrefix, normalized)
}

type RedisItemCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisItemCache(client *redis.Client, ttl time.Duration) *RedisItemCache {
	return &RedisItemCache{client: client, ttl: ttl}
}

func (c *RedisItemCache) GetList(ctx context.Context, normalized string) ([]models.Item, error) {
	cached, err := c.client.Get(ctx, itemListKey(normalized)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(cached, &items); err != nil {
		return nil, fmt.Errorf("decode cached items: %w", err)
	}
	return items, nil
}

func (c *RedisItemCache) SetList(ctx context.Context, normalized string, items []models.Item) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	return c.client.Set(ctx, itemListKey(normalized), data, c.ttl).Err()
}

func (c *RedisItemCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, itemListKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
