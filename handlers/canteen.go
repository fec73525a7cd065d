package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"online-canteen-api/models"
	"online-canteen-api/services"
)

// CanteenHandler serves the legacy quick-order endpoints kept from the
// first iteration of the system. They take and return the raw record and
// perform no role or inventory checks.
type CanteenHandler struct {
	Canteen *services.CanteenService
}

func (h *CanteenHandler) Test(c *gin.Context) {
	c.String(http.StatusOK, "Online Canteen is running!")
}

func (h *CanteenHandler) CreateOrder(c *gin.Context) {
	var order models.CanteenOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.Canteen.CreateOrder(&order); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *CanteenHandler) ListOrders(c *gin.Context) {
	orders, err := h.Canteen.AllOrders()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *CanteenHandler) GetOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.Canteen.GetOrderByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *CanteenHandler) OrdersByStatus(c *gin.Context) {
	orders, err := h.Canteen.OrdersByStatus(c.Param("status"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *CanteenHandler) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var details models.CanteenOrder
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	order, err := h.Canteen.UpdateOrder(id, &details)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *CanteenHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	status, err := c.GetRawData()
	if err != nil || len(status) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status body is required"})
		return
	}
	order, err := h.Canteen.UpdateOrderStatus(id, string(status))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *CanteenHandler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Canteen.DeleteOrder(id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
