// Package auth provides session management for dashboard users and the
// shared-secret admin gate.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitrine-app/vitrine/internal/db"
	"github.com/vitrine-app/vitrine/internal/logger"
	"github.com/vitrine-app/vitrine/internal/models"
)

const minPasswordLength = 6

// Session describes an authenticated visitor for the duration of a request
type Session struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service handles sign-up, sign-in, and session verification
type Service struct {
	repos  *db.Repositories
	secret []byte
	ttl    time.Duration
}

// NewService creates a new auth service instance
func NewService(repos *db.Repositories, jwtSecret string, sessionTTL time.Duration) *Service {
	return &Service{
		repos:  repos,
		secret: []byte(jwtSecret),
		ttl:    sessionTTL,
	}
}

// SignUp creates a new account and returns it with a fresh session token,
// so registration doubles as the first sign-in.
func (s *Service) SignUp(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", ErrInvalidCredentials
	}
	if len(password) < minPasswordLength {
		return nil, "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(email, string(hash))
	if err := s.repos.Users.Create(ctx, user); err != nil {
		if db.IsDuplicate(err) {
			return nil, "", ErrEmailTaken
		}
		logger.Log.Error().
			Err(err).
			Str("email", email).
			Msg("Failed to create user")
		return nil, "", fmt.Errorf("failed to sign up: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	logger.Log.Info().
		Str("user_id", user.ID.String()).
		Msg("User registered")

	return user, token, nil
}

// SignIn verifies credentials and returns the user with a session token.
//
// The original dashboard never wired a sign-in call to its auth backend,
// only sign-up; this closes that gap rather than reproducing it.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repos.Users.GetByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		logger.Log.Error().
			Err(err).
			Str("email", email).
			Msg("Failed to look up user")
		return nil, "", fmt.Errorf("failed to sign in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// CurrentSession parses and verifies a session token.
// Any malformed, mis-signed, or expired token maps to ErrNoSession; the
// caller's only recourse is a redirect to login, so finer detail is noise.
func (s *Service) CurrentSession(tokenStr string) (*Session, error) {
	if tokenStr == "" {
		return nil, ErrNoSession
	}

	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil, ErrNoSession
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrNoSession
	}

	return &Session{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *Service) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}
