package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/food_classifier/internal/domain"
)

const TableProcessedImages = "processed_images"

type ImagesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewImagesRepository(pool *pgxpool.Pool) *ImagesRepository {
	return &ImagesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ImagesRepository) ProcessedImage(ctx context.Context, fileID string) (*domain.ProcessedImage, error) {
	sql, args, err := r.qb.
		Select(
			"file_id",
			"file_name",
			"processed_at",
			"prediction",
			"image_url",
		).
		From(TableProcessedImages).
		Where(sq.Eq{"file_id": fileID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	image, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ProcessedImage])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, collectRowError(err)
	}

	image.Timestamp = image.Timestamp.UTC()

	return image, nil
}

// CreateProcessedImage inserts image unless a record for the same file id
// exists. When it does, the stored record is returned with created false.
// The returned record carries the timestamp as stored.
func (r *ImagesRepository) CreateProcessedImage(ctx context.Context, image *domain.ProcessedImage) (*domain.ProcessedImage, bool, error) {
	record := *image
	record.Timestamp = storedTime(image.Timestamp)

	prediction, err := json.Marshal(record.Prediction)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode prediction: %w", err)
	}

	sql, args, err := r.qb.
		Insert(TableProcessedImages).
		Columns(
			"file_id",
			"file_name",
			"processed_at",
			"prediction",
			"image_url",
		).
		Values(
			record.FileID,
			record.FileName,
			record.Timestamp,
			prediction,
			record.ImageURL,
		).
		Suffix("ON CONFLICT (file_id) DO NOTHING RETURNING file_id").
		ToSql()
	if err != nil {
		return nil, false, createQueryError(err)
	}

	var fileID string
	err = r.pool.QueryRow(ctx, sql, args...).Scan(&fileID)
	switch {
	case err == nil:
		return &record, true, nil
	case errors.Is(err, pgx.ErrNoRows):
		existing, err := r.ProcessedImage(ctx, record.FileID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	default:
		return nil, false, scanRowError(err)
	}
}
