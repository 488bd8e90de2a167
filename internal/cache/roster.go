package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"DakaCamp/internal/model"
	"DakaCamp/storage/redis"
)

const (
	rosterKey = "stats:roster"

	rosterTTL = 5 * time.Minute
)

// GetRoster 读花名册缓存，未命中返回 (nil, false)
func GetRoster(ctx context.Context) ([]model.User, bool, error) {
	raw, err := redis.Client().Get(ctx, redis.Key(rosterKey)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get roster cache: %w", err)
	}

	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		// 缓存坏了当未命中，下游会回源重建
		return nil, false, nil
	}
	return users, true, nil
}

// SetRoster 写花名册缓存
func SetRoster(ctx context.Context, users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}
	return redis.Client().Set(ctx, redis.Key(rosterKey), raw, rosterTTL).Err()
}

// InvalidateRoster 失效花名册缓存（新用户首次出现时调用）
func InvalidateRoster(ctx context.Context) error {
	return redis.Client().Del(ctx, redis.Key(rosterKey)).Err()
}
