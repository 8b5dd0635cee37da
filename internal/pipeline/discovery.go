package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kurochkinivan/food_classifier/internal/config"
	"github.com/kurochkinivan/food_classifier/internal/domain"
)

// recentPageSize bounds the listing in latest mode. Only the newest file of
// the page is processed.
const recentPageSize = 5

var processStates = []string{"sync", "update", "add"}

type Discovery struct {
	log         *slog.Logger
	folderID    string
	mode        string
	lister      FileLister
	transferrer Transferrer
	requester   ClassificationRequester
	watermarks  Watermarks
}

func NewDiscovery(
	log *slog.Logger,
	folderID string,
	mode string,
	lister FileLister,
	transferrer Transferrer,
	requester ClassificationRequester,
	watermarks Watermarks,
) *Discovery {
	return &Discovery{
		log:         log,
		folderID:    folderID,
		mode:        mode,
		lister:      lister,
		transferrer: transferrer,
		requester:   requester,
		watermarks:  watermarks,
	}
}

// HandleNotification processes new images for sync, update and add
// notifications and acknowledges every other state. A returned error means
// the folder could not be inspected at all; per-file failures are reported
// in the result.
func (d *Discovery) HandleNotification(ctx context.Context, n domain.Notification) (*domain.DiscoveryResult, error) {
	d.log.InfoContext(ctx, "received change notification",
		slog.String("resource_state", n.ResourceState),
		slog.String("resource_id", n.ResourceID),
		slog.String("resource_uri", n.ResourceURI),
	)

	if !slices.Contains(processStates, n.ResourceState) {
		return &domain.DiscoveryResult{
			Status: domain.StatusReceived,
			Type:   n.ResourceState,
		}, nil
	}

	if d.mode == config.DiscoveryWatermark {
		return d.processSinceWatermark(ctx)
	}

	return d.processLatest(ctx)
}

func (d *Discovery) processLatest(ctx context.Context) (*domain.DiscoveryResult, error) {
	files, err := d.lister.RecentImages(ctx, d.folderID, recentPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent images: %w", err)
	}

	if len(files) == 0 {
		return &domain.DiscoveryResult{Status: domain.StatusNoFiles}, nil
	}

	return d.processFile(ctx, files[0]), nil
}

func (d *Discovery) processSinceWatermark(ctx context.Context) (*domain.DiscoveryResult, error) {
	watermark, err := d.watermarks.Watermark(ctx, d.folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get watermark: %w", err)
	}

	listed, err := d.lister.ImagesCreatedSince(ctx, d.folderID, watermark.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to list images created since %s: %w", watermark.CreatedAt, err)
	}

	// the listing is inclusive, so files sharing the watermark time come back
	files := slices.DeleteFunc(listed, watermark.Covers)

	if len(files) == 0 {
		return &domain.DiscoveryResult{Status: domain.StatusNoFiles}, nil
	}

	d.log.DebugContext(ctx, "found images newer than watermark",
		slog.Int("files_count", len(files)),
		slog.Time("watermark", watermark.CreatedAt),
	)

	result := &domain.DiscoveryResult{Status: domain.StatusSuccess}
	for _, file := range files {
		fileResult := d.processFile(ctx, file)
		result.Files = append(result.Files, fileResult)

		// later files wait for the next notification so the watermark never
		// passes a failed one
		if fileResult.Status != domain.StatusSuccess {
			result.Status = domain.StatusError
			break
		}

		if err := d.watermarks.AdvanceWatermark(ctx, d.folderID, file.CreatedTime, file.ID); err != nil {
			return nil, fmt.Errorf("failed to advance watermark: %w", err)
		}
	}

	return result, nil
}

func (d *Discovery) processFile(ctx context.Context, file *domain.SourceFile) *domain.DiscoveryResult {
	log := d.log.With(slog.String("file_name", file.Name))

	if err := d.transferrer.Transfer(ctx, file); err != nil {
		log.ErrorContext(ctx, "failed to transfer file", slog.String("err", err.Error()))

		return &domain.DiscoveryResult{
			Status: domain.StatusError,
			Error:  "Failed to transfer file: " + err.Error(),
		}
	}

	classification, err := d.requester.RequestClassification(ctx, file.Name)
	if err != nil {
		log.ErrorContext(ctx, "failed to classify file", slog.String("err", err.Error()))

		var statusErr *domain.ClassifierStatusError
		if errors.As(err, &statusErr) {
			return &domain.DiscoveryResult{
				Status:   domain.StatusError,
				FileName: file.Name,
				Error:    "Classifier error: " + statusErr.Body,
			}
		}

		return &domain.DiscoveryResult{
			Status: domain.StatusError,
			Error:  "Failed to classify: " + err.Error(),
		}
	}

	log.InfoContext(ctx, "file processed")

	return &domain.DiscoveryResult{
		Status:         domain.StatusSuccess,
		FileName:       file.Name,
		Processed:      true,
		Classification: classification,
	}
}
