package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gosocial/internal/model"
	"gosocial/internal/pkg/jwtutil"
	"gosocial/internal/transport/http/response"
)

const ContextUserKey = "current_user"

// UserStore resolves a token subject to a live account.
type UserStore interface {
	GetByID(id uint) (*model.User, error)
}

// AuthJWT verifies the Authorization header and attaches the resolved user
// to the request context. The header must be exactly "Bearer <token>"; the
// subject must still exist (a deleted account invalidates its tokens even
// before they expire).
func AuthJWT(secret string, users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Token required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Invalid token format")
			c.Abort()
			return
		}

		claims, err := jwtutil.ParseToken(secret, parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			log.Printf("resolve token subject failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
			c.Abort()
			return
		}
		if user == nil {
			response.Error(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthJWT earlier in the chain.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
