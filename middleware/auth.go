package middleware

import (
	"log"
	"strings"

	"Ecommerce/jwt"

	"github.com/gin-gonic/gin"
)

// RequireSignIn verifies the bearer token and attaches the user id to the
// request context. A failed verification is logged and the chain stops
// without writing a response body.
func RequireSignIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := jwt.VerifyToken(token)
		if err != nil {
			log.Printf("token verification failed: %v", err)
			c.Abort()
			return
		}

		c.Set("UserID", userID)
		c.Next()
	}
}
