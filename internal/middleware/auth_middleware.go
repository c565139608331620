package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ByteOps02/URL-Shortener/internal/models"
	"github.com/ByteOps02/URL-Shortener/internal/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userContextKey = "currentUser"

// Authenticate resolves an optional bearer token into a user identity.
// Requests without an Authorization header pass through unauthenticated;
// requests with a bad header, a bad token or an unknown user are rejected
// here. It never requires an identity — that is RequireAuth's job.
func Authenticate(db *gorm.DB, tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer") {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Authorization header must start with Bearer",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Token"})
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Token"})
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			}
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// RequireAuth gates routes that need a resolved identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "You must be logged in to access this resource",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity attached by Authenticate, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetCurrentUser attaches an identity to the request context. Exported for tests.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userContextKey, user)
}
