package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"online-canteen-api/middleware"
	"online-canteen-api/models"
	"online-canteen-api/services"
)

type ShopHandler struct {
	Shops *services.ShopService
}

type ShopRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// ListShops returns every active shop (public).
func (h *ShopHandler) ListShops(c *gin.Context) {
	shops, err := h.Shops.ActiveShops()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

// GetShop returns a single shop; soft-deleted shops are invisible here.
func (h *ShopHandler) GetShop(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	shop, err := h.Shops.GetShopByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if !shop.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found or inactive"})
		return
	}
	c.JSON(http.StatusOK, shop)
}

// MyShops returns the shops owned by the acting seller.
func (h *ShopHandler) MyShops(c *gin.Context) {
	user, ok := requireSeller(c, "access their shops")
	if !ok {
		return
	}
	shops, err := h.Shops.ShopsByOwner(user.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

// CreateShop creates a shop owned by the acting seller.
func (h *ShopHandler) CreateShop(c *gin.Context) {
	user, ok := requireSeller(c, "create shops")
	if !ok {
		return
	}

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	shop := models.Shop{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Phone:       req.Phone,
		Email:       req.Email,
	}
	if err := h.Shops.CreateShop(&shop, user); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shop)
}

// UpdateShop updates a shop's editable fields; ownership, active flag and
// creation time survive the update.
func (h *ShopHandler) UpdateShop(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.Shops.GetShopByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if !h.Shops.IsShopOwnedByUser(user.ID, id) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only update your own shops"})
		return
	}

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	shop.Name = req.Name
	shop.Description = req.Description
	shop.Location = req.Location
	shop.Phone = req.Phone
	shop.Email = req.Email
	if err := h.Shops.UpdateShop(shop); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// DeleteShop soft-deletes a shop owned by the acting user.
func (h *ShopHandler) DeleteShop(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.Shops.GetShopByID(id); err != nil {
		serviceError(c, err)
		return
	}
	if !h.Shops.IsShopOwnedByUser(user.ID, id) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete your own shops"})
		return
	}

	if err := h.Shops.SoftDeleteShop(id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shop deleted successfully"})
}
