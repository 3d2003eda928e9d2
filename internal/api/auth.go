package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitrine-app/vitrine/internal/auth"
	"github.com/vitrine-app/vitrine/internal/logger"
	"github.com/vitrine-app/vitrine/internal/middleware"
	"github.com/vitrine-app/vitrine/internal/models"
	"github.com/vitrine-app/vitrine/internal/webhook"
)

// Request/Response DTOs

// RegisterRequest represents a new account registration.
// Name is forwarded to the registration webhook only; profiles derive
// their names separately on first dashboard visit.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a credential sign-in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SessionResponse pairs a user with their session token
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// CurrentSessionResponse describes the session behind a presented token
type CurrentSessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminLoginRequest carries the entered admin password
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse returns the token the client stores for admin requests
type AdminLoginResponse struct {
	AdminToken string `json:"admin_token"`
}

// AuthHandler handles registration, sign-in, and the admin gate
type AuthHandler struct {
	authService *auth.Service
	gate        *auth.Gate
	notifier    *webhook.Notifier
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *auth.Service, gate *auth.Gate, notifier *webhook.Notifier) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		gate:        gate,
		notifier:    notifier,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Email and password are required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, token, err := h.authService.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "email_taken",
				Message: "An account with this email already exists",
			})
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_request",
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "signup_failed",
				Message: "Failed to create account",
			})
		}
		return
	}

	// Best effort; a dead hook must not undo a created account
	if h.notifier.Enabled() {
		_ = h.notifier.NotifyRegistration(ctx, webhook.RegistrationEvent{
			Name:  req.Name,
			Email: user.Email,
		})
	}

	c.JSON(http.StatusCreated, sessionResponse(user, token))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Email and password are required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, token, err := h.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Msg("Sign-in failed")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "login_failed",
			Message: "Failed to sign in",
		})
		return
	}

	c.JSON(http.StatusOK, sessionResponse(user, token))
}

// CurrentSession handles GET /api/auth/session. Runs behind RequireSession,
// so reaching the handler means the token checked out.
func (h *AuthHandler) CurrentSession(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "no_session",
			Message: "No active session",
		})
		return
	}

	c.JSON(http.StatusOK, CurrentSessionResponse{
		UserID:    session.UserID.String(),
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	})
}

// AdminLogin handles POST /api/admin/login. A wrong password changes
// nothing; a right one hands back the token the client stores.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Password is required",
		})
		return
	}

	if !h.gate.Verify(req.Password) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_admin_password",
			Message: "Invalid admin password",
		})
		return
	}

	c.JSON(http.StatusOK, AdminLoginResponse{
		AdminToken: h.gate.Secret(),
	})
}

func sessionResponse(user *models.User, token string) SessionResponse {
	return SessionResponse{
		User: UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
		},
		Token: token,
	}
}

// SetupAuthRoutes registers the public auth routes and the session probe
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authService *auth.Service, gate *auth.Gate, notifier *webhook.Notifier) {
	handler := NewAuthHandler(authService, gate, notifier)

	apiGroup.POST("/auth/register", handler.Register)
	apiGroup.POST("/auth/login", handler.Login)
	apiGroup.GET("/auth/session", middleware.RequireSession(authService), handler.CurrentSession)
	apiGroup.POST("/admin/login", handler.AdminLogin)
}
