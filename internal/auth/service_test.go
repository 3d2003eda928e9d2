package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine-app/vitrine/internal/db"
)

func setupTestService(t *testing.T, ttl time.Duration) (*Service, func()) {
	t.Helper()

	database, err := db.New(":memory:")
	require.NoError(t, err)

	sqlDB, err := database.GetSQLDB()
	require.NoError(t, err)
	err = db.RunMigrations(sqlDB, "file://../../migrations")
	require.NoError(t, err)

	repos := db.NewRepositories(database)
	service := NewService(repos, "test-jwt-secret", ttl)

	cleanup := func() {
		_ = database.Close()
	}

	return service, cleanup
}

func TestSignUp_Success(t *testing.T) {
	service, cleanup := setupTestService(t, time.Hour)
	defer cleanup()

	ctx := context.Background()
	user, token, err := service.SignUp(ctx, "jane.doe@example.com", "sekret1")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "sekret1", user.PasswordHash)
	assert.NotEmpty(t, token)

	// Registration doubles as the first sign-in
	session, err := service.CurrentSession(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, user.Email, session.Email)
}

func TestSignUp_NormalizesEmail(t *testing.T) {
	service, cleanup := setupTestService(t, time.Hour)
	defer cleanup()

	user, _, err := service.SignUp(context.Background(), "  Jane@Example.COM ", "sekret1")

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestSignUp_WeakPassword(t *testing.T) {
	service, cleanup := setupTestService(t, time.Hour)
	defer cleanup()

	_, _, err := service.SignUp(context.Background(), "jane@example.com", "short")

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestSignUp_InvalidEmail(t *testing.T) {
	service, cleanup := setupTestService(t, time.Hour)
	defer cleanup()

	_, _, err := service.SignUp(context.Background(), "not-an-email", "sekret1")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	service, cleanup := setupTestService(t, time.Hour)
	defer cleanup()

	ctx := context.Background()
	_, _, err := service.SignUp(ctx, "jane@example.com", "sekret1")
	require.NoError(t, err)

	_, _, err = service.SignUp(ctx, "jane@example.com", "other-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignIn(t *testing.T) {
	service, cleanup := setupTestService(t, time.Hour)
	defer cleanup()

	ctx := context.Background()
	registered, _, err := service.SignUp(ctx, "jane@example.com", "sekret1")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, token, err := service.SignIn(ctx, "jane@example.com", "sekret1")

		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		session, err := service.CurrentSession(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, session.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.SignIn(ctx, "jane@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := service.SignIn(ctx, "nobody@example.com", "sekret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCurrentSession_Rejections(t *testing.T) {
	service, cleanup := setupTestService(t, time.Hour)
	defer cleanup()

	t.Run("empty token", func(t *testing.T) {
		_, err := service.CurrentSession("")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.CurrentSession("not.a.jwt")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, otherCleanup := setupTestService(t, time.Hour)
		defer otherCleanup()
		other.secret = []byte("different-secret")

		_, token, err := other.SignUp(context.Background(), "eve@example.com", "sekret1")
		require.NoError(t, err)

		_, err = service.CurrentSession(token)
		assert.ErrorIs(t, err, ErrNoSession)
	})
}

func TestCurrentSession_Expired(t *testing.T) {
	// Negative TTL issues already-expired tokens
	service, cleanup := setupTestService(t, -time.Minute)
	defer cleanup()

	_, token, err := service.SignUp(context.Background(), "jane@example.com", "sekret1")
	require.NoError(t, err)

	_, err = service.CurrentSession(token)
	assert.ErrorIs(t, err, ErrNoSession)
}
