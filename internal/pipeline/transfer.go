package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kurochkinivan/food_classifier/internal/domain"
)

const defaultContentType = "application/octet-stream"

type Transfer struct {
	log        *slog.Logger
	tempDir    string
	downloader FileDownloader
	store      ObjectStore
}

func NewTransfer(log *slog.Logger, tempDir string, downloader FileDownloader, store ObjectStore) *Transfer {
	return &Transfer{
		log:        log,
		tempDir:    tempDir,
		downloader: downloader,
		store:      store,
	}
}

// Transfer copies file into the object store under its original name,
// overwriting whatever is stored there.
func (t *Transfer) Transfer(ctx context.Context, file *domain.SourceFile) error {
	log := t.log.With(
		slog.String("file_name", file.Name),
		slog.String("file_id", file.ID),
	)

	exists, err := t.store.Exists(ctx, file.Name)
	switch {
	case err != nil:
		log.WarnContext(ctx, "failed to check object existence", slog.String("err", err.Error()))
	case exists:
		log.InfoContext(ctx, "file already exists in bucket, overwriting")
	}

	size, err := t.copy(ctx, file)
	if err != nil {
		return &domain.TransferError{FileName: file.Name, Err: err}
	}

	log.InfoContext(ctx, "uploaded file to object storage", slog.Int64("size", size))

	return nil
}

func (t *Transfer) copy(ctx context.Context, file *domain.SourceFile) (_ int64, err error) {
	tmp, err := os.CreateTemp(t.tempDir, "transfer-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { err = errors.Join(err, tmp.Close(), os.Remove(tmp.Name())) }()

	if err := t.downloader.Download(ctx, file.ID, tmp); err != nil {
		return 0, fmt.Errorf("failed to download file: %w", err)
	}

	size, err := tmp.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("failed to get file size: %w", err)
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to rewind temp file: %w", err)
	}

	contentType := file.MimeType
	if contentType == "" {
		contentType = defaultContentType
	}

	if err := t.store.Upload(ctx, file.Name, contentType, tmp, size); err != nil {
		return 0, fmt.Errorf("failed to upload file: %w", err)
	}

	return size, nil
}
