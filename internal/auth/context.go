package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxUserRole    = "user_role"

	// SessionHeader carries the anonymous device session id used to key
	// locally stored favorites.
	SessionHeader = "X-Session-ID"
)

// UserFirebaseUID extracts the Firebase UID from the Gin context.
// Empty for anonymous requests.
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}

// SessionID extracts the anonymous session id from the request.
func SessionID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(SessionHeader))
}
