package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/food_classifier/internal/config"
	"github.com/kurochkinivan/food_classifier/internal/domain"
	"github.com/kurochkinivan/food_classifier/internal/repository"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "food_classifier:lock:"

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another worker is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	ping := func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}

	retry := repository.Retry(log, ping, repository.MaxRetries, repository.RetryDelay)

	if err := retry(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

type lockClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

type Locker struct {
	client lockClient
}

func NewLocker(client *redis.Client) *Locker {
	return &Locker{client: client}
}

// Lock takes a short-lived lock on key. domain.ErrAlreadyProcessing is
// returned while another holder owns it.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	key = keyPrefix + key
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return nil, domain.ErrAlreadyProcessing
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock: %w", err)
		}
		return nil
	}

	return release, nil
}
