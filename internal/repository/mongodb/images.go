package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kurochkinivan/food_classifier/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// imageDocument keys records by file id so a second insert for the same
// file fails with a duplicate key error.
type imageDocument struct {
	ID         string         `bson:"_id"`
	FileName   string         `bson:"file_name"`
	Timestamp  time.Time      `bson:"timestamp"`
	Prediction []domain.Label `bson:"prediction"`
	ImageURL   string         `bson:"image_url"`
}

func newImageDocument(image *domain.ProcessedImage) imageDocument {
	return imageDocument{
		ID:         image.FileID,
		FileName:   image.FileName,
		Timestamp:  image.Timestamp,
		Prediction: image.Prediction,
		ImageURL:   image.ImageURL,
	}
}

func (d imageDocument) toDomain() *domain.ProcessedImage {
	prediction := d.Prediction
	if prediction == nil {
		prediction = []domain.Label{}
	}

	return &domain.ProcessedImage{
		FileID:     d.ID,
		FileName:   d.FileName,
		Timestamp:  d.Timestamp.UTC(),
		Prediction: prediction,
		ImageURL:   d.ImageURL,
	}
}

type ImagesRepository struct {
	coll *mongo.Collection
}

func NewImagesRepository(db *mongo.Database, collection string) *ImagesRepository {
	return &ImagesRepository{coll: db.Collection(collection)}
}

func (r *ImagesRepository) ProcessedImage(ctx context.Context, fileID string) (*domain.ProcessedImage, error) {
	var doc imageDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": fileID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find image: %w", err)
	}

	return doc.toDomain(), nil
}

// CreateProcessedImage returns the record with the timestamp at the
// millisecond precision BSON dates keep.
func (r *ImagesRepository) CreateProcessedImage(ctx context.Context, image *domain.ProcessedImage) (*domain.ProcessedImage, bool, error) {
	record := *image
	record.Timestamp = image.Timestamp.UTC().Truncate(time.Millisecond)

	if _, err := r.coll.InsertOne(ctx, newImageDocument(&record)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			existing, err := r.ProcessedImage(ctx, record.FileID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to insert image: %w", err)
	}

	return &record, true, nil
}
