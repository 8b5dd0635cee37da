package gdrive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/food_classifier/internal/domain"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	listFields   = "files(id, name, mimeType, createdTime)"
	pagedFields  = "nextPageToken, files(id, name, mimeType, createdTime)"
	pageSize     = 100
	channelType  = "web_hook"
	createdSince = " and createdTime >= '%s'"
)

type Client struct {
	service *drive.Service
}

// New builds a Drive client. Application default credentials are used when
// credentialsJSON is empty.
func New(ctx context.Context, credentialsJSON string, scopes ...string) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(scopes...)}
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	return NewWithOptions(ctx, opts...)
}

func NewWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Client{service: service}, nil
}

// RecentImages lists up to limit images of the folder, newest first.
func (c *Client) RecentImages(ctx context.Context, folderID string, limit int) ([]*domain.SourceFile, error) {
	list, err := c.service.Files.List().
		Q(imagesQuery(folderID)).
		OrderBy("createdTime desc").
		PageSize(int64(limit)).
		Fields(listFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return toSourceFiles(folderID, list.Files)
}

// ImagesCreatedSince lists every image of the folder created at or after
// since, oldest first. A zero time lists the whole folder.
func (c *Client) ImagesCreatedSince(ctx context.Context, folderID string, since time.Time) ([]*domain.SourceFile, error) {
	q := imagesQuery(folderID)
	if !since.IsZero() {
		q += fmt.Sprintf(createdSince, since.UTC().Format(time.RFC3339Nano))
	}

	var files []*domain.SourceFile
	err := c.service.Files.List().
		Q(q).
		OrderBy("createdTime").
		PageSize(pageSize).
		Fields(pagedFields).
		Pages(ctx, func(list *drive.FileList) error {
			page, err := toSourceFiles(folderID, list.Files)
			if err != nil {
				return err
			}
			files = append(files, page...)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return files, nil
}

func (c *Client) Download(ctx context.Context, fileID string, w io.Writer) error {
	resp, err := c.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("failed to request file content: %w", err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read file content: %w", err)
	}

	return nil
}

// Watch asks Drive to deliver change notifications for folderID to address
// until expiration.
func (c *Client) Watch(ctx context.Context, folderID, address string, expiration time.Time) (*domain.WatchChannel, error) {
	channel, err := c.service.Files.Watch(folderID, &drive.Channel{
		Id:         uuid.NewString(),
		Type:       channelType,
		Address:    address,
		Expiration: expiration.UnixMilli(),
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to register watch channel: %w", err)
	}

	return &domain.WatchChannel{
		ID:         channel.Id,
		ResourceID: channel.ResourceId,
		Expiration: time.UnixMilli(channel.Expiration).UTC(),
	}, nil
}

func imagesQuery(folderID string) string {
	escaped := strings.ReplaceAll(folderID, `'`, `\'`)
	return fmt.Sprintf("'%s' in parents and mimeType contains 'image/' and trashed=false", escaped)
}

func toSourceFiles(folderID string, files []*drive.File) ([]*domain.SourceFile, error) {
	result := make([]*domain.SourceFile, 0, len(files))
	for _, f := range files {
		created, err := time.Parse(time.RFC3339, f.CreatedTime)
		if err != nil {
			return nil, fmt.Errorf("invalid created time %q of file %q: %w", f.CreatedTime, f.Id, err)
		}

		result = append(result, &domain.SourceFile{
			ID:          f.Id,
			Name:        f.Name,
			FolderID:    folderID,
			MimeType:    f.MimeType,
			CreatedTime: created,
		})
	}

	return result, nil
}
