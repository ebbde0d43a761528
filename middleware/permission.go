package middleware

import (
	"net/http"

	"Ecommerce/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IsAdmin loads the signed-in user and lets the request through only when
// their role is the admin sentinel.
func IsAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("UserID")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "UnAuthorized Access",
			})
			return
		}

		var user models.User
		err := db.First(&user, "id = ?", userID).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Error in admin middleware",
				"error":   err.Error(),
			})
			return
		}

		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "UnAuthorized Access",
			})
			return
		}

		c.Next()
	}
}
