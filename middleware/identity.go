package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"online-canteen-api/models"
	"online-canteen-api/services"
)

const currentUserKey = "currentUser"

// IdentityRequired resolves the caller-supplied userId query parameter
// into the acting user and injects it into the request context. The id is
// trusted as-is; there is no token verification in this design.
func IdentityRequired(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("userId")
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "userId query parameter is required"})
			c.Abort()
			return
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userId"})
			c.Abort()
			return
		}
		user, err := users.GetUserByID(uint(id))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			}
			c.Abort()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser extracts the acting user set by IdentityRequired.
func CurrentUser(c *gin.Context) *models.User {
	val, _ := c.Get(currentUserKey)
	return val.(*models.User)
}
