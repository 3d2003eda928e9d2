package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine-app/vitrine/internal/db"
	"github.com/vitrine-app/vitrine/internal/models"
)

func setupResolver(t *testing.T) (*Resolver, *db.Repositories, func()) {
	t.Helper()

	database, err := db.New(":memory:")
	require.NoError(t, err)

	sqlDB, err := database.GetSQLDB()
	require.NoError(t, err)
	err = db.RunMigrations(sqlDB, "file://../../migrations")
	require.NoError(t, err)

	repos := db.NewRepositories(database)

	cleanup := func() {
		_ = database.Close()
	}

	return NewResolver(repos), repos, cleanup
}

// createUser inserts an account so profile FK constraints hold
func createUser(t *testing.T, repos *db.Repositories, email string) uuid.UUID {
	t.Helper()
	user := models.NewUser(email, "hash")
	require.NoError(t, repos.Users.Create(context.Background(), user))
	return user.ID
}

func TestResolve_CreatesOnFirstVisit(t *testing.T) {
	resolver, repos, cleanup := setupResolver(t)
	defer cleanup()

	ctx := context.Background()
	userID := createUser(t, repos, "jane.doe@example.com")

	resolved, err := resolver.Resolve(ctx, userID, "jane.doe@example.com")

	require.NoError(t, err)
	require.NotNil(t, resolved.Profile.FirstName)
	assert.Equal(t, "Jane", *resolved.Profile.FirstName)
	require.NotNil(t, resolved.Profile.LastName)
	assert.Equal(t, "Doe", *resolved.Profile.LastName)
	assert.Equal(t, "Jane Doe", resolved.DisplayName)

	// The row exists now; no second backfill should happen
	stored, err := repos.Profiles.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", *stored.FirstName)
}

func TestResolve_UnderscoreSeparator(t *testing.T) {
	resolver, repos, cleanup := setupResolver(t)
	defer cleanup()

	userID := createUser(t, repos, "john_smith@example.com")

	resolved, err := resolver.Resolve(context.Background(), userID, "john_smith@example.com")

	require.NoError(t, err)
	assert.Equal(t, "John Smith", resolved.DisplayName)
}

func TestResolve_SingleWordLocalPart(t *testing.T) {
	resolver, repos, cleanup := setupResolver(t)
	defer cleanup()

	userID := createUser(t, repos, "admin@example.com")

	resolved, err := resolver.Resolve(context.Background(), userID, "admin@example.com")

	require.NoError(t, err)
	require.NotNil(t, resolved.Profile.FirstName)
	assert.Equal(t, "Admin", *resolved.Profile.FirstName)
	assert.Nil(t, resolved.Profile.LastName)
	assert.Equal(t, "Admin", resolved.DisplayName)
}

func TestResolve_StoredNameWinsOverEmail(t *testing.T) {
	resolver, repos, cleanup := setupResolver(t)
	defer cleanup()

	ctx := context.Background()
	userID := createUser(t, repos, "jane.doe@example.com")

	first := "Janet"
	last := "Dormer"
	require.NoError(t, repos.Profiles.Create(ctx, &models.Profile{
		ID:        userID,
		FirstName: &first,
		LastName:  &last,
	}))

	resolved, err := resolver.Resolve(ctx, userID, "jane.doe@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Janet Dormer", resolved.DisplayName)
}

func TestResolve_FallsBackToUser(t *testing.T) {
	resolver, repos, cleanup := setupResolver(t)
	defer cleanup()

	ctx := context.Background()
	userID := createUser(t, repos, "x@example.com")

	// An existing row with empty names and an email nothing can be derived
	// from resolves to the literal fallback
	require.NoError(t, repos.Profiles.Create(ctx, &models.Profile{ID: userID}))

	resolved, err := resolver.Resolve(ctx, userID, "x@example.com")

	require.NoError(t, err)
	assert.Equal(t, "User", resolved.DisplayName)
}

func TestResolve_BackfillHappensOnce(t *testing.T) {
	resolver, repos, cleanup := setupResolver(t)
	defer cleanup()

	ctx := context.Background()
	userID := createUser(t, repos, "jane.doe@example.com")

	_, err := resolver.Resolve(ctx, userID, "jane.doe@example.com")
	require.NoError(t, err)

	// The user edits their name; a later resolve must not overwrite it
	newFirst := "J"
	require.NoError(t, repos.Profiles.UpdateNames(ctx, userID, &newFirst, nil))

	resolved, err := resolver.Resolve(ctx, userID, "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "J", resolved.DisplayName)
}

func TestNamesFromEmail(t *testing.T) {
	tests := []struct {
		email string
		first string
		last  string
		ok    bool
	}{
		{"jane.doe@example.com", "Jane", "Doe", true},
		{"john_smith@example.com", "John", "Smith", true},
		{"admin@example.com", "Admin", "", true},
		{"a.b.c@example.com", "A", "B", true},
		{"@example.com", "", "", false},
		{"no-at-sign", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			first, last, ok := namesFromEmail(tt.email)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.first, first)
				assert.Equal(t, tt.last, last)
			}
		})
	}
}
