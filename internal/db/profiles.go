package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/models"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile row keyed by user id
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	result := r.db.WithContext(ctx).Create(profile)
	if result.Error != nil {
		return fmt.Errorf("failed to create profile: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByUserID retrieves the profile for a user. Returns ErrNotFound on miss;
// the caller decides whether a miss triggers lazy creation.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	result := r.db.WithContext(ctx).Where("id = ?", userID.String()).First(&profile)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &profile, nil
}

// UpdateNames sets the name fields on an existing profile.
// Map-based update so names can be cleared back to NULL.
func (r *ProfileRepository) UpdateNames(ctx context.Context, userID uuid.UUID, firstName, lastName *string) error {
	updates := map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
	}

	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", userID.String()).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
