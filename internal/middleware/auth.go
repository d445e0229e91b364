package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"board-automation-api/internal/response"
)

// Auth returns a middleware that validates JWT tokens locally
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		// Support both "user_id" and "sub" claim formats
		var userIDStr string
		if uid, ok := claims["user_id"].(string); ok {
			userIDStr = uid
		} else if sub, ok := claims["sub"].(string); ok {
			userIDStr = sub
		} else {
			abortUnauthorized(c, "User ID not found in token")
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			abortUnauthorized(c, "Invalid user ID format")
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
	c.Abort()
}

// UserID extracts the authenticated user ID stored by Auth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
