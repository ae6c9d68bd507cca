package cache

import (
	"context"
	"time"

	"internhub_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient создает и проверяет подключение к Redis.
// Redis используется только для пер-аккаунтных блокировок верификации платежей.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
