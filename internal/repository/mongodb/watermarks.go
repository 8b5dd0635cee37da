package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kurochkinivan/food_classifier/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type watermarkDocument struct {
	FolderID      string    `bson:"_id"`
	LastCreatedAt time.Time `bson:"last_created_at"`
	LastFileIDs   []string  `bson:"last_file_ids"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type WatermarksRepository struct {
	coll *mongo.Collection
}

func NewWatermarksRepository(db *mongo.Database, collection string) *WatermarksRepository {
	return &WatermarksRepository{coll: db.Collection(collection)}
}

func (r *WatermarksRepository) Watermark(ctx context.Context, folderID string) (domain.Watermark, error) {
	var doc watermarkDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": folderID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Watermark{}, nil
		}
		return domain.Watermark{}, fmt.Errorf("failed to find watermark: %w", err)
	}

	return domain.Watermark{
		CreatedAt: doc.LastCreatedAt.UTC(),
		FileIDs:   doc.LastFileIDs,
	}, nil
}

// AdvanceWatermark runs as a single pipeline update so concurrent writers
// never move the watermark backwards or drop a handled id.
func (r *WatermarksRepository) AdvanceWatermark(ctx context.Context, folderID string, createdAt time.Time, fileID string) error {
	update := mongo.Pipeline{
		{{Key: "$set", Value: watermarkUpdate(createdAt.UTC(), fileID, time.Now().UTC())}},
	}

	_, err := r.coll.UpdateByID(ctx, folderID, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to advance watermark: %w", err)
	}

	return nil
}

// watermarkUpdate reads the stored fields as they were before the update;
// on upsert they are missing, which compares lower than any date.
func watermarkUpdate(createdAt time.Time, fileID string, now time.Time) bson.D {
	return bson.D{
		{Key: "last_file_ids", Value: bson.M{"$switch": bson.M{
			"branches": bson.A{
				bson.M{
					"case": bson.M{"$gt": bson.A{createdAt, "$last_created_at"}},
					"then": bson.A{fileID},
				},
				bson.M{
					"case": bson.M{"$eq": bson.A{createdAt, "$last_created_at"}},
					"then": bson.M{"$setUnion": bson.A{"$last_file_ids", bson.A{fileID}}},
				},
			},
			"default": "$last_file_ids",
		}}},
		{Key: "last_created_at", Value: bson.M{"$max": bson.A{"$last_created_at", createdAt}}},
		{Key: "updated_at", Value: now},
	}
}
