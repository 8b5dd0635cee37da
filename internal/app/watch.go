package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/food_classifier/internal/config"
	"github.com/kurochkinivan/food_classifier/internal/infrastructure/gdrive"
	"google.golang.org/api/drive/v3"
)

// RegisterWatch subscribes webhookURL to change notifications for the
// configured folder. Channels expire and must be registered again.
func RegisterWatch(ctx context.Context, log *slog.Logger, cfg *config.Watch) error {
	client, err := gdrive.New(ctx, cfg.Google.CredentialsJSON, drive.DriveScope)
	if err != nil {
		return fmt.Errorf("failed to create drive client: %w", err)
	}

	channel, err := client.Watch(ctx, cfg.Google.FolderID, cfg.WebhookURL, time.Now().Add(cfg.Expiration))
	if err != nil {
		return fmt.Errorf("failed to register watch: %w", err)
	}

	log.InfoContext(ctx, "watch registered",
		slog.String("folder_id", cfg.Google.FolderID),
		slog.String("channel_id", channel.ID),
		slog.String("resource_id", channel.ResourceID),
		slog.Time("expiration", channel.Expiration),
	)

	return nil
}
