package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"online-canteen-api/middleware"
	"online-canteen-api/models"
	"online-canteen-api/services"
)

// requireSeller returns the acting user when they are a seller, otherwise
// writes a 403 naming the attempted action. The role switch is exhaustive:
// an unrecognized role is rejected, never waved through.
func requireSeller(c *gin.Context, action string) (*models.User, bool) {
	user := middleware.CurrentUser(c)
	switch user.Role {
	case models.RoleSeller:
		return user, true
	case models.RoleCustomer:
		c.JSON(http.StatusForbidden, gin.H{"message": "Only sellers can " + action})
		return nil, false
	}
	c.JSON(http.StatusForbidden, gin.H{"message": "Unknown role"})
	return nil, false
}

// requireCustomer is the customer-side counterpart of requireSeller.
func requireCustomer(c *gin.Context, action string) (*models.User, bool) {
	user := middleware.CurrentUser(c)
	switch user.Role {
	case models.RoleCustomer:
		return user, true
	case models.RoleSeller:
		c.JSON(http.StatusForbidden, gin.H{"message": "Only customers can " + action})
		return nil, false
	}
	c.JSON(http.StatusForbidden, gin.H{"message": "Unknown role"})
	return nil, false
}

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// serviceError maps a service failure onto the HTTP error taxonomy:
// NotFound into 404, InvalidArgument into 400, anything else into 500 with
// the message echoed.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
