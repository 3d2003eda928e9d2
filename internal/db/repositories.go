package db

// Repositories provides access to all database repositories
type Repositories struct {
	MediaItems *MediaItemRepository
	Users      *UserRepository
	Profiles   *ProfileRepository
}

// NewRepositories creates a new repository collection
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		MediaItems: NewMediaItemRepository(db),
		Users:      NewUserRepository(db),
		Profiles:   NewProfileRepository(db),
	}
}
