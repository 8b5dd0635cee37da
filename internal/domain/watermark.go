package domain

import (
	"slices"
	"time"
)

// Watermark records how far a folder has been processed. Files created
// before CreatedAt are done, and so are the files in FileIDs created exactly
// at CreatedAt. Several files can share a creation time, so the time alone
// cannot tell which of them were handled.
type Watermark struct {
	CreatedAt time.Time
	FileIDs   []string
}

// Covers reports whether file was already handled.
func (w Watermark) Covers(file *SourceFile) bool {
	if file.CreatedTime.Before(w.CreatedAt) {
		return true
	}
	return file.CreatedTime.Equal(w.CreatedAt) && slices.Contains(w.FileIDs, file.ID)
}

// Advance returns the watermark after file has been handled. It never moves
// backwards.
func (w Watermark) Advance(file *SourceFile) Watermark {
	switch {
	case file.CreatedTime.After(w.CreatedAt):
		return Watermark{CreatedAt: file.CreatedTime, FileIDs: []string{file.ID}}
	case file.CreatedTime.Equal(w.CreatedAt) && !slices.Contains(w.FileIDs, file.ID):
		return Watermark{CreatedAt: w.CreatedAt, FileIDs: append(slices.Clone(w.FileIDs), file.ID)}
	default:
		return w
	}
}
