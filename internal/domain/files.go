package domain

import (
	"strings"
	"time"
)

// SourceFile is a file reference owned by the file-storage provider.
type SourceFile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FolderID    string    `json:"folder_id"`
	MimeType    string    `json:"mime_type"`
	CreatedTime time.Time `json:"created_time"`
}

// FileNameFromPath returns the last "/"-separated segment of path.
func FileNameFromPath(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// FileIDFromPath derives the record identifier from a file path: the file
// name up to its first dot.
func FileIDFromPath(path string) string {
	name := FileNameFromPath(path)
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}
