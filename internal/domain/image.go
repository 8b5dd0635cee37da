package domain

import "time"

type ProcessedImage struct {
	FileID     string    `json:"file_id"    db:"file_id"`
	FileName   string    `json:"file_name"  db:"file_name"`
	Timestamp  time.Time `json:"timestamp"  db:"processed_at"`
	Prediction []Label   `json:"prediction" db:"prediction"`
	ImageURL   string    `json:"image_url"  db:"image_url"`
}

type ClassifyResult struct {
	Image            *ProcessedImage
	AlreadyProcessed bool
}

// WatchChannel describes a registered change notification channel.
type WatchChannel struct {
	ID         string
	ResourceID string
	Expiration time.Time
}
