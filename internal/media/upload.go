// Package media implements the media library's business logic: the category
// filter over the dashboard grid and the multi-step upload workflow.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/vitrine-app/vitrine/internal/db"
	"github.com/vitrine-app/vitrine/internal/logger"
	"github.com/vitrine-app/vitrine/internal/models"
	"github.com/vitrine-app/vitrine/internal/storage"
)

// thumbnailPrefix namespaces thumbnail blobs inside the bucket
const thumbnailPrefix = "thumbnails/"

// Blob is an incoming file from a multipart form
type Blob struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// UploadInput carries the upload form's fields. URL is set for link items;
// File is set for video/audio; Thumbnail is required for every type.
type UploadInput struct {
	Title       string
	Description string
	Type        models.MediaType
	URL         string
	File        *Blob
	Thumbnail   *Blob
}

// Uploader runs the media registration workflow: validate the form, push
// blobs to storage, then insert the database row. Steps are strictly
// sequential because each depends on the previous step's output, and a
// failed step aborts everything after it. Blobs uploaded before a failure
// are left in place; there is no compensating delete.
type Uploader struct {
	store storage.BlobStore
	repos *db.Repositories
}

// NewUploader creates a new uploader instance
func NewUploader(store storage.BlobStore, repos *db.Repositories) *Uploader {
	return &Uploader{
		store: store,
		repos: repos,
	}
}

// Validate checks the form before any network call. An empty type defaults
// to video, matching the form's initial state. Returns a ValidationError
// naming the first missing field.
func (u *Uploader) Validate(in *UploadInput) error {
	if in.Type == "" {
		in.Type = models.MediaTypeVideo
	}
	if !in.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be video, audio, or link"}
	}

	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}

	if in.Type == models.MediaTypeLink {
		if strings.TrimSpace(in.URL) == "" {
			return &ValidationError{Field: "url", Reason: "is required for link items"}
		}
		if in.File != nil {
			return &ValidationError{Field: "file", Reason: "link items do not carry an uploaded file"}
		}
	} else {
		if in.File == nil {
			return &ValidationError{Field: "file", Reason: "is required for video and audio items"}
		}
	}

	if in.Thumbnail == nil {
		return &ValidationError{Field: "thumbnail", Reason: "is required"}
	}

	return nil
}

// Upload runs the full workflow and returns the created item.
//
// Sequence: main blob (video/audio only) -> thumbnail blob -> insert row.
// A step failure aborts the workflow and surfaces the step's error; blobs
// from completed steps stay in storage as documented orphans.
func (u *Uploader) Upload(ctx context.Context, in UploadInput) (*models.MediaItem, error) {
	if err := u.Validate(&in); err != nil {
		return nil, err
	}

	contentURL := strings.TrimSpace(in.URL)

	if in.Type.RequiresFile() {
		key := objectKey("", in.File.Filename)
		if err := u.store.Upload(ctx, key, in.File.Reader, in.File.ContentType); err != nil {
			logger.Log.Error().
				Err(err).
				Str("key", key).
				Msg("Main blob upload failed")
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}
		contentURL = u.store.PublicURL(key)
	}

	thumbKey := objectKey(thumbnailPrefix, in.Thumbnail.Filename)
	if err := u.store.Upload(ctx, thumbKey, in.Thumbnail.Reader, in.Thumbnail.ContentType); err != nil {
		// The main blob, if any, is already in storage and stays there
		logger.Log.Error().
			Err(err).
			Str("key", thumbKey).
			Msg("Thumbnail upload failed")
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}
	thumbnailURL := u.store.PublicURL(thumbKey)

	var description *string
	if d := strings.TrimSpace(in.Description); d != "" {
		description = &d
	}

	item := models.NewMediaItem(strings.TrimSpace(in.Title), description, in.Type, contentURL, thumbnailURL)
	if err := u.repos.MediaItems.Create(ctx, item); err != nil {
		logger.Log.Error().
			Err(err).
			Str("title", item.Title).
			Msg("Media item insert failed after blob upload")
		return nil, fmt.Errorf("failed to save media item: %w", err)
	}

	logger.Log.Info().
		Str("id", item.ID.String()).
		Str("type", string(item.Type)).
		Msg("Media item registered")

	return item, nil
}

// objectKey builds a fresh random key, preserving the original file
// extension so content types stay guessable from the URL.
func objectKey(prefix, filename string) string {
	ext := path.Ext(filename)
	return prefix + uuid.New().String() + ext
}
