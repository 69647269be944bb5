package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prospectcrm/internal/pkg/jwt"
	"prospectcrm/internal/pkg/response"
)

const (
	ctxUserID   = "user_id"
	ctxUserName = "user_name"
	ctxRole     = "role"
)

// Identity is the authenticated user behind a request.
type Identity struct {
	UserID string
	Name   string
	Role   string
}

// JWTAuth validates the bearer token and stores the caller's identity in the
// gin context.
func JWTAuth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be a Bearer token")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Empty token")
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		SetIdentity(c, Identity{UserID: claims.UserID, Name: claims.Name, Role: claims.Role})
		c.Next()
	}
}

// SetIdentity stores id in the request context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(ctxUserID, id.UserID)
	c.Set(ctxUserName, id.Name)
	c.Set(ctxRole, id.Role)
}

// CurrentUser returns the identity placed by JWTAuth.
func CurrentUser(c *gin.Context) (Identity, bool) {
	id := Identity{
		UserID: c.GetString(ctxUserID),
		Name:   c.GetString(ctxUserName),
		Role:   c.GetString(ctxRole),
	}
	return id, id.UserID != ""
}
