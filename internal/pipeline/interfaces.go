package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/kurochkinivan/food_classifier/internal/domain"
)

type FileLister interface {
	RecentImages(ctx context.Context, folderID string, limit int) ([]*domain.SourceFile, error)
	// ImagesCreatedSince includes files created exactly at since.
	ImagesCreatedSince(ctx context.Context, folderID string, since time.Time) ([]*domain.SourceFile, error)
}

type FileDownloader interface {
	Download(ctx context.Context, fileID string, w io.Writer) error
}

type ObjectStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	Upload(ctx context.Context, name, contentType string, r io.Reader, size int64) error
}

type Transferrer interface {
	Transfer(ctx context.Context, file *domain.SourceFile) error
}

type ClassificationRequester interface {
	RequestClassification(ctx context.Context, filePath string) (json.RawMessage, error)
}

type Watermarks interface {
	// Watermark returns the zero value when the folder has no watermark yet.
	Watermark(ctx context.Context, folderID string) (domain.Watermark, error)
	// AdvanceWatermark records fileID as handled at createdAt.
	AdvanceWatermark(ctx context.Context, folderID string, createdAt time.Time, fileID string) error
}

type Labeler interface {
	DetectLabels(ctx context.Context, imageURI string) ([]domain.RawLabel, error)
}

type ImageRecords interface {
	ProcessedImage(ctx context.Context, fileID string) (*domain.ProcessedImage, error)
	// CreateProcessedImage stores image unless a record with the same file id
	// exists. It returns the stored record and whether it was created.
	CreateProcessedImage(ctx context.Context, image *domain.ProcessedImage) (*domain.ProcessedImage, bool, error)
}

type Locker interface {
	// Lock returns domain.ErrAlreadyProcessing when key is held elsewhere.
	Lock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}
