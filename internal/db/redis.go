package db

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/everest-cuisine/booking-api/internal/config"
)

// NewRedis connects to the rate limit store. A failed ping is logged but
// not fatal: the guard fails closed until the store comes back.
func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.RateLimitStoreTimeout,
		ReadTimeout:  cfg.RateLimitStoreTimeout,
		WriteTimeout: cfg.RateLimitStoreTimeout,
		MaxRetries:   -1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed (%s): %v", cfg.RedisAddr, err)
	}

	return client
}
