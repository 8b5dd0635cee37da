package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/food_classifier/internal/config"
	"github.com/kurochkinivan/food_classifier/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.MongoDB) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	ping := func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}

	retry := repository.Retry(log, ping, repository.MaxRetries, repository.RetryDelay)

	if err := retry(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client.Database(cfg.Database), nil
}
