package repository

import (
	"context"
	"log/slog"
	"time"
)

const (
	MaxRetries = 5
	RetryDelay = 5 * time.Second
)

type PingFunction func(context.Context) error

// Retry wraps ping so that it is attempted up to retries+1 times,
// sleeping delay between attempts.
func Retry(log *slog.Logger, ping PingFunction, retries int, delay time.Duration) PingFunction {
	return func(ctx context.Context) error {
		for r := 0; ; r++ {
			err := ping(ctx)
			if err == nil || r >= retries {
				return err
			}

			log.Debug("database connection attempt failed, retrying",
				slog.Int("attempt", r+1),
				slog.Int("max_retries", retries),
				slog.String("err", err.Error()))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
