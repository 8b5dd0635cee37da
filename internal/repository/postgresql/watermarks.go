package postgresql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/food_classifier/internal/domain"
)

const TableFolderWatermarks = "folder_watermarks"

type WatermarksRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewWatermarksRepository(pool *pgxpool.Pool) *WatermarksRepository {
	return &WatermarksRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Watermark returns the zero value if no file of the folder was handled yet.
func (r *WatermarksRepository) Watermark(ctx context.Context, folderID string) (domain.Watermark, error) {
	sql, args, err := r.qb.
		Select(
			"last_created_at",
			"last_file_ids",
		).
		From(TableFolderWatermarks).
		Where(sq.Eq{"folder_id": folderID}).
		ToSql()
	if err != nil {
		return domain.Watermark{}, createQueryError(err)
	}

	var watermark domain.Watermark
	err = r.pool.QueryRow(ctx, sql, args...).Scan(&watermark.CreatedAt, &watermark.FileIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Watermark{}, nil
		}
		return domain.Watermark{}, scanRowError(err)
	}

	watermark.CreatedAt = watermark.CreatedAt.UTC()

	return watermark, nil
}

// AdvanceWatermark never moves the watermark backwards. A file created at
// the current watermark time is added to the handled ids.
func (r *WatermarksRepository) AdvanceWatermark(ctx context.Context, folderID string, createdAt time.Time, fileID string) error {
	sql, args, err := r.qb.
		Insert(TableFolderWatermarks).
		Columns(
			"folder_id",
			"last_created_at",
			"last_file_ids",
			"updated_at",
		).
		Values(
			folderID,
			storedTime(createdAt),
			[]string{fileID},
			sq.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (folder_id) DO UPDATE SET
			last_file_ids = CASE
				WHEN EXCLUDED.last_created_at > folder_watermarks.last_created_at
					THEN EXCLUDED.last_file_ids
				WHEN EXCLUDED.last_created_at = folder_watermarks.last_created_at
					AND NOT EXCLUDED.last_file_ids <@ folder_watermarks.last_file_ids
					THEN folder_watermarks.last_file_ids || EXCLUDED.last_file_ids
				ELSE folder_watermarks.last_file_ids
			END,
			last_created_at = GREATEST(folder_watermarks.last_created_at, EXCLUDED.last_created_at),
			updated_at = EXCLUDED.updated_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
