package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"online-canteen-api/models"
	"online-canteen-api/services"
)

type FoodHandler struct {
	Foods *services.FoodItemService
	Shops *services.ShopService
}

type FoodItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	IsAvailable bool    `json:"is_available"`
}

// ItemsByShop returns the available menu of an active shop (public).
func (h *FoodHandler) ItemsByShop(c *gin.Context) {
	shopID, ok := idParam(c, "shopId")
	if !ok {
		return
	}
	shop, err := h.Shops.GetShopByID(shopID)
	if err != nil || !shop.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found or inactive"})
		return
	}
	items, err := h.Foods.AvailableItemsByShop(shopID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetFoodItem returns a single food item (public).
func (h *FoodHandler) GetFoodItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Foods.GetFoodItemByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateFoodItem adds an item to one of the acting seller's shops. The
// target shop comes from the shopId query parameter.
func (h *FoodHandler) CreateFoodItem(c *gin.Context) {
	user, ok := requireSeller(c, "create food items")
	if !ok {
		return
	}

	shopID, err := strconv.ParseUint(c.Query("shopId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shopId"})
		return
	}
	if _, err := h.Shops.GetShopByID(uint(shopID)); err != nil {
		serviceError(c, err)
		return
	}
	if !h.Shops.IsShopOwnedByUser(user.ID, uint(shopID)) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only add food items to your own shops"})
		return
	}

	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item := models.FoodItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
		IsAvailable: req.Quantity > 0,
	}
	if err := h.Foods.CreateFoodItem(&item, uint(shopID)); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateFoodItem replaces an item's editable fields.
func (h *FoodHandler) UpdateFoodItem(c *gin.Context) {
	user, ok := requireSeller(c, "update food items")
	if !ok {
		return
	}
	id, idOK := idParam(c, "id")
	if !idOK {
		return
	}

	existing, err := h.Foods.GetFoodItemByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if !h.Shops.IsShopOwnedByUser(user.ID, existing.ShopID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only update food items in your own shops"})
		return
	}

	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item := models.FoodItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
		IsAvailable: req.IsAvailable && req.Quantity > 0,
	}
	if err := h.Foods.UpdateFoodItem(&item); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateQuantity is the explicit stock adjustment endpoint; the new
// quantity comes from the quantity query parameter.
func (h *FoodHandler) UpdateQuantity(c *gin.Context) {
	user, ok := requireSeller(c, "update food item quantities")
	if !ok {
		return
	}
	id, idOK := idParam(c, "id")
	if !idOK {
		return
	}

	existing, err := h.Foods.GetFoodItemByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if !h.Shops.IsShopOwnedByUser(user.ID, existing.ShopID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only update food items in your own shops"})
		return
	}

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quantity"})
		return
	}

	item, err := h.Foods.SetQuantity(id, quantity)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteFoodItem removes an item from the acting seller's shop.
func (h *FoodHandler) DeleteFoodItem(c *gin.Context) {
	user, ok := requireSeller(c, "delete food items")
	if !ok {
		return
	}
	id, idOK := idParam(c, "id")
	if !idOK {
		return
	}

	existing, err := h.Foods.GetFoodItemByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if !h.Shops.IsShopOwnedByUser(user.ID, existing.ShopID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete food items in your own shops"})
		return
	}

	if err := h.Foods.DeleteFoodItem(id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}
