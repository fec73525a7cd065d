package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"online-canteen-api/middleware"
	"online-canteen-api/models"
	"online-canteen-api/services"
	"online-canteen-api/statemachine"
)

type OrderHandler struct {
	Orders *services.OrderService
	Shops  *services.ShopService
}

type CreateOrderRequest struct {
	ShopID uint   `json:"shop_id" binding:"required"`
	Notes  string `json:"notes"`
	Items  []struct {
		FoodItemID uint `json:"food_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MyOrders returns the acting user's orders: their own for customers, the
// orders of every shop they own for sellers.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	switch user.Role {
	case models.RoleCustomer:
		orders, err := h.Orders.OrdersByCustomer(user.ID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	case models.RoleSeller:
		shops, err := h.Shops.ShopsByOwner(user.ID)
		if err != nil {
			serviceError(c, err)
			return
		}
		orders := []models.Order{}
		for _, shop := range shops {
			shopOrders, err := h.Orders.OrdersByShop(shop.ID)
			if err != nil {
				serviceError(c, err)
				return
			}
			orders = append(orders, shopOrders...)
		}
		c.JSON(http.StatusOK, orders)
	default:
		c.JSON(http.StatusForbidden, gin.H{"message": "Unknown role"})
	}
}

// OrdersByShop returns a shop's orders to its owner.
func (h *OrderHandler) OrdersByShop(c *gin.Context) {
	user, ok := requireSeller(c, "view shop orders")
	if !ok {
		return
	}
	shopID, idOK := idParam(c, "shopId")
	if !idOK {
		return
	}
	if !h.Shops.IsShopOwnedByUser(user.ID, shopID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only view orders for your own shops"})
		return
	}

	orders, err := h.Orders.OrdersByShop(shopID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// OrdersByShopAndStatus filters a shop's orders by status.
func (h *OrderHandler) OrdersByShopAndStatus(c *gin.Context) {
	user, ok := requireSeller(c, "view shop orders")
	if !ok {
		return
	}
	shopID, idOK := idParam(c, "shopId")
	if !idOK {
		return
	}
	if !h.Shops.IsShopOwnedByUser(user.ID, shopID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only view orders for your own shops"})
		return
	}

	status, err := models.ParseOrderStatus(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	orders, err := h.Orders.OrdersByShopAndStatus(shopID, status)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order to its customer or to the owner of its shop.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	order, err := h.Orders.GetOrderByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	switch user.Role {
	case models.RoleSeller:
		if !h.Shops.IsShopOwnedByUser(user.ID, order.ShopID) {
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only view orders for your own shops"})
			return
		}
	case models.RoleCustomer:
		if !h.Orders.IsOrderOwnedByCustomer(id, user.ID) {
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only view your own orders"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"message": "Unknown role"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// CreateOrder places a new order for the acting customer.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	user, ok := requireCustomer(c, "create orders")
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{FoodItemID: item.FoodItemID, Quantity: item.Quantity})
	}

	order, err := h.Orders.CreateOrder(user.ID, req.ShopID, lines, req.Notes)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrderStatus moves an order through its lifecycle. Customers may
// only cancel their own orders; sellers may set any status on orders
// placed at their shops.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.Orders.GetOrderByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	if err := statemachine.CanRequest(user.Role, status); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		return
	}
	switch user.Role {
	case models.RoleCustomer:
		if !h.Orders.IsOrderOwnedByCustomer(id, user.ID) {
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only cancel your own orders"})
			return
		}
	case models.RoleSeller:
		if !h.Shops.IsShopOwnedByUser(user.ID, order.ShopID) {
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only update orders for your own shops"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"message": "Unknown role"})
		return
	}

	updated, err := h.Orders.UpdateOrderStatus(id, status)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// StateMachineInfo publishes the order lifecycle for API consumers.
func (h *OrderHandler) StateMachineInfo(c *gin.Context) {
	transitions := map[string][]models.OrderStatus{}
	terminal := []models.OrderStatus{}
	for _, s := range statemachine.AllStatuses() {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
			continue
		}
		transitions[s.String()] = statemachine.ValidTransitionsFrom(s)
	}
	c.JSON(http.StatusOK, gin.H{
		"initial":         models.StatusPending,
		"transitions":     transitions,
		"terminal_states": terminal,
	})
}
