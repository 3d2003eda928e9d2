package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Returns ErrDuplicate if the email is taken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return fmt.Errorf("failed to create user: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByID retrieves a user by their UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&user)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &user, nil
}
