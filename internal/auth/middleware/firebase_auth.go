package middleware

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/AmitSalunkhe/jmbm-v2/internal/auth"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
	"github.com/AmitSalunkhe/jmbm-v2/internal/users"
)

// RequireAuth validates the Firebase ID token, ensures the user document
// exists (creating it with the default role on first sign-in) and stores
// the uid and role in context.
func RequireAuth(authClient *fbauth.Client, userRepo *users.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}
		if authClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "auth not configured"})
			c.Abort()
			return
		}

		decoded, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		u := domain.User{UID: decoded.UID}
		if email, ok := decoded.Claims["email"].(string); ok {
			u.Email = email
		}
		if name, ok := decoded.Claims["name"].(string); ok {
			u.DisplayName = name
		}
		if photo, ok := decoded.Claims["picture"].(string); ok {
			u.PhotoURL = photo
		}

		stored, err := userRepo.EnsureUser(c.Request.Context(), u)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure user: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(auth.CtxFirebaseUID, decoded.UID)
		c.Set(auth.CtxUserRole, stored.Role)
		c.Next()
	}
}

// OptionalAuth sets the uid in context when a valid token is presented and
// lets the request continue anonymously otherwise. The favorites routes use
// it to pick between the local and remote stores.
func OptionalAuth(authClient *fbauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" || authClient == nil {
			c.Next()
			return
		}
		decoded, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err == nil {
			c.Set(auth.CtxFirebaseUID, decoded.UID)
		}
		c.Next()
	}
}

// RequireAdmin gates admin routes on the application-level role field.
// It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(auth.CtxUserRole) != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
