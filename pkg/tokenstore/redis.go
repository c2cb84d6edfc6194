package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	rdb *redis.Client
	key string
}

// NewRedis stores the token under "<prefix>:token".
func NewRedis(rdb *redis.Client, prefix string) *Redis {
	key := Key
	if prefix != "" {
		key = prefix + ":" + Key
	}
	return &Redis{rdb: rdb, key: key}
}

func (r *Redis) Load(ctx context.Context) (string, error) {
	token, err := r.rdb.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore/redis: can't get %s, %w", r.key, err)
	}
	return token, nil
}

func (r *Redis) Save(ctx context.Context, token string) error {
	if err := r.rdb.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("tokenstore/redis: can't set %s, %w", r.key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("tokenstore/redis: can't delete %s, %w", r.key, err)
	}
	return nil
}
