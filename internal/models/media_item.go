package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaItem represents one entry in the media library grid.
//
// ContentURL is immutable after creation: for video/audio it points at the
// uploaded blob's public URL, for link items it is the user-supplied URL
// verbatim. ThumbnailURL is required for every type, links included.
type MediaItem struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primaryKey;column:id"`
	Title        string    `json:"title" gorm:"type:text;not null;column:title" validate:"required"`
	Description  *string   `json:"description,omitempty" gorm:"type:text;column:description"`
	Type         MediaType `json:"type" gorm:"type:text;not null;column:type" validate:"required"`
	ContentURL   string    `json:"content_url" gorm:"type:text;not null;column:content_url" validate:"required"`
	ThumbnailURL string    `json:"thumbnail_url" gorm:"type:text;not null;column:thumbnail_url" validate:"required"`
	CreatedAt    time.Time `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
}

// TableName overrides the GORM table name
func (MediaItem) TableName() string {
	return "media_items"
}

// NewMediaItem creates a new MediaItem with generated UUID and timestamp
func NewMediaItem(title string, description *string, mediaType MediaType, contentURL, thumbnailURL string) *MediaItem {
	return &MediaItem{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		Type:         mediaType,
		ContentURL:   contentURL,
		ThumbnailURL: thumbnailURL,
		CreatedAt:    time.Now().UTC(),
	}
}
