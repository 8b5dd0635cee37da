package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kurochkinivan/food_classifier/internal/domain"
)

type ClassifierSettings struct {
	BucketName    string
	PublicURLBase string
	Vocabulary    domain.Vocabulary
	LockTTL       time.Duration
}

// ImageClassifier labels stored images and records the result once per
// file id.
type ImageClassifier struct {
	log      *slog.Logger
	settings ClassifierSettings
	labeler  Labeler
	records  ImageRecords
	locker   Locker

	// recheck repeats the record lookup once the lock is held
	recheck bool
	now     func() time.Time
}

func NewImageClassifier(
	log *slog.Logger,
	settings ClassifierSettings,
	labeler Labeler,
	records ImageRecords,
	locker Locker,
) *ImageClassifier {
	recheck := locker != nil
	if locker == nil {
		locker = NoopLocker{}
	}

	if len(settings.Vocabulary) == 0 {
		settings.Vocabulary = domain.DefaultVocabulary
	}

	return &ImageClassifier{
		log:      log,
		settings: settings,
		labeler:  labeler,
		records:  records,
		locker:   locker,
		recheck:  recheck,
		now:      time.Now,
	}
}

func (c *ImageClassifier) Classify(ctx context.Context, filePath string) (*domain.ClassifyResult, error) {
	fileID := domain.FileIDFromPath(filePath)
	if fileID == "" {
		return nil, domain.ErrMissingFilePath
	}

	log := c.log.With(
		slog.String("file_id", fileID),
		slog.String("file_path", filePath),
	)

	if result, err := c.existing(ctx, fileID); result != nil || err != nil {
		if result != nil {
			log.DebugContext(ctx, "file already processed")
		}
		return result, err
	}

	release, err := c.locker.Lock(ctx, fileID, c.settings.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to lock %q: %w", fileID, err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			log.WarnContext(ctx, "failed to release lock", slog.String("err", err.Error()))
		}
	}()

	// a holder that finished between the lookup and the lock has stored its
	// record by now
	if c.recheck {
		if result, err := c.existing(ctx, fileID); result != nil || err != nil {
			if result != nil {
				log.DebugContext(ctx, "file processed while waiting for lock")
			}
			return result, err
		}
	}

	raw, err := c.labeler.DetectLabels(ctx, c.imageURI(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to detect labels: %w", err)
	}

	image := &domain.ProcessedImage{
		FileID:     fileID,
		FileName:   domain.FileNameFromPath(filePath),
		Timestamp:  c.now().UTC(),
		Prediction: c.settings.Vocabulary.Rank(raw),
		ImageURL:   c.publicURL(filePath),
	}

	stored, created, err := c.records.CreateProcessedImage(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("failed to save processed image: %w", err)
	}

	if !created {
		log.InfoContext(ctx, "file was processed concurrently, keeping stored record")
		return &domain.ClassifyResult{Image: stored, AlreadyProcessed: true}, nil
	}

	log.InfoContext(ctx, "processed image", slog.Int("labels_count", len(image.Prediction)))

	return &domain.ClassifyResult{Image: stored}, nil
}

// existing returns nil, nil when no record of fileID is stored.
func (c *ImageClassifier) existing(ctx context.Context, fileID string) (*domain.ClassifyResult, error) {
	image, err := c.records.ProcessedImage(ctx, fileID)
	switch {
	case err == nil:
		return &domain.ClassifyResult{Image: image, AlreadyProcessed: true}, nil
	case errors.Is(err, domain.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("failed to get processed image: %w", err)
	}
}

func (c *ImageClassifier) imageURI(filePath string) string {
	return "gs://" + c.settings.BucketName + "/" + filePath
}

func (c *ImageClassifier) publicURL(filePath string) string {
	return strings.TrimRight(c.settings.PublicURLBase, "/") + "/" + c.settings.BucketName + "/" + filePath
}

// NoopLocker never contends. It is used when no lock backend is configured.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, string, time.Duration) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
