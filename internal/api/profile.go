package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitrine-app/vitrine/internal/logger"
	"github.com/vitrine-app/vitrine/internal/middleware"
	"github.com/vitrine-app/vitrine/internal/profile"
)

// ProfileResponse is what the dashboard header greets with
type ProfileResponse struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DisplayName string  `json:"display_name"`
}

// ProfileHandler handles profile resolution requests
type ProfileHandler struct {
	resolver *profile.Resolver
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(resolver *profile.Resolver) *ProfileHandler {
	return &ProfileHandler{resolver: resolver}
}

// GetProfile handles GET /api/profile for the current session's user.
// A first visit creates the profile row as a side effect.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "no_session",
			Message: "No active session",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resolved, err := h.resolver.Resolve(ctx, session.UserID, session.Email)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("user_id", session.UserID.String()).
			Msg("Failed to resolve profile")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "profile_failed",
			Message: "Failed to load profile",
		})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		FirstName:   resolved.Profile.FirstName,
		LastName:    resolved.Profile.LastName,
		DisplayName: resolved.DisplayName,
	})
}

// SetupProfileRoutes registers profile routes on the session-gated group
func SetupProfileRoutes(apiGroup *gin.RouterGroup, resolver *profile.Resolver) {
	handler := NewProfileHandler(resolver)
	apiGroup.GET("/profile", handler.GetProfile)
}
