package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/models"
)

// MediaItemRepository handles database operations for media items
type MediaItemRepository struct {
	db *DB
}

// NewMediaItemRepository creates a new media item repository
func NewMediaItemRepository(db *DB) *MediaItemRepository {
	return &MediaItemRepository{db: db}
}

// Create inserts a new media item
func (r *MediaItemRepository) Create(ctx context.Context, item *models.MediaItem) error {
	result := r.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		return fmt.Errorf("failed to create media item: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByID retrieves a media item by its UUID
func (r *MediaItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MediaItem, error) {
	var item models.MediaItem
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&item)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &item, nil
}

// List retrieves all media items ordered newest first.
// This is the dashboard's single read query; category narrowing happens
// in memory on top of its result.
func (r *MediaItemRepository) List(ctx context.Context) ([]*models.MediaItem, error) {
	var items []*models.MediaItem
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list media items: %w", MapGormError(result.Error))
	}
	return items, nil
}

// Count returns the total number of media items
func (r *MediaItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.MediaItem{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count media items: %w", MapGormError(result.Error))
	}
	return count, nil
}

// UpdateDetails updates the editable fields of a media item by id.
// Type and both URLs are immutable after creation, so only title and
// description are ever patched.
func (r *MediaItemRepository) UpdateDetails(ctx context.Context, id uuid.UUID, title string, description *string) error {
	updates := map[string]interface{}{
		"title":       title,
		"description": description,
	}

	result := r.db.WithContext(ctx).Model(&models.MediaItem{}).Where("id = ?", id.String()).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update media item: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a media item by its UUID
func (r *MediaItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.MediaItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete media item: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
