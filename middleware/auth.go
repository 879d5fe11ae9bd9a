package middleware

import (
	"net/http"
	"strings"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   utils.APIError{Message: message},
	})
}

// bearerToken extracts the token from the Authorization header,
// empty when absent or malformed
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return token
}

// loadUser validates the token and fetches the account
func loadUser(tokenString string) (*models.User, bool) {
	userID, err := utils.ValidateToken(tokenString)
	if err != nil {
		utils.LogError("Invalid token: %v", err)
		return nil, false
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.LogError("Token user %d not found: %v", userID, err)
		return nil, false
	}
	return &user, true
}

// AuthMiddleware requires a valid bearer token and loads the user
// into the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Vui lòng đăng nhập để tiếp tục")
			return
		}

		user, ok := loadUser(token)
		if !ok {
			abortUnauthorized(c, "Vui lòng đăng nhập để tiếp tục")
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   utils.APIError{Message: "Tài khoản đã bị khóa"},
			})
			return
		}

		c.Set("user", *user)
		c.Next()
	}
}

// OptionalAuthMiddleware loads the user when a valid token is present
// but lets anonymous requests through. Used by the order lookup
// endpoint, where the authenticated-user filter takes precedence over
// the phone and order-number filters.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, ok := loadUser(token); ok && user.IsActive {
				c.Set("user", *user)
			}
		}
		c.Next()
	}
}

// AdminMiddleware requires the context user to have the admin role.
// Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			abortUnauthorized(c, "Vui lòng đăng nhập để tiếp tục")
			return
		}
		user, ok := userVal.(models.User)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   utils.APIError{Message: "Bạn không có quyền truy cập"},
			})
			return
		}
		c.Next()
	}
}
