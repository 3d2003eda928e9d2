package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vitrine-app/vitrine/internal/auth"
)

// sessionKey is the gin context key the verified session is stored under
const sessionKey = "session"

// AdminTokenHeader carries the shared admin secret the browser kept in
// local storage. Presenting the correct value makes the request admin.
const AdminTokenHeader = "X-Admin-Token"

// RequireSession rejects requests without a valid Bearer session token.
// This is the server half of the dashboard's auth gate: no session means
// the client gets a 401 and redirects itself to login.
func RequireSession(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		session, err := authService.CurrentSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "no_session",
				"message": "Please login to access the dashboard",
			})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireAdmin rejects requests whose admin token does not match the shared
// secret. Runs after RequireSession on mutating routes; the two gates are
// orthogonal, matching the original dashboard.
func RequireAdmin(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Authorize(c.GetHeader(AdminTokenHeader)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "not_admin",
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session stored by RequireSession, or nil
func SessionFromContext(c *gin.Context) *auth.Session {
	val, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, ok := val.(*auth.Session)
	if !ok {
		return nil
	}
	return session
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
