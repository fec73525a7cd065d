package routes

import (
	"github.com/gin-gonic/gin"

	"online-canteen-api/handlers"
)

// Handlers bundles everything SetupRoutes needs. Identity is the
// middleware resolving ?userId= into the acting user; routes without it
// are public.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Shops    *handlers.ShopHandler
	Food     *handlers.FoodHandler
	Orders   *handlers.OrderHandler
	Canteen  *handlers.CanteenHandler
	Identity gin.HandlerFunc
}

func SetupRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")

	// ── Auth ───────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/check", h.Auth.Check)
	}

	// ── Shops ──────────────────────────────────────────────────────
	shop := api.Group("/shop")
	{
		shop.GET("", h.Shops.ListShops)
		shop.GET("/my-shops", h.Identity, h.Shops.MyShops)
		shop.GET("/:id", h.Shops.GetShop)
		shop.POST("", h.Identity, h.Shops.CreateShop)
		shop.PUT("/:id", h.Identity, h.Shops.UpdateShop)
		shop.DELETE("/:id", h.Identity, h.Shops.DeleteShop)
	}

	// ── Food items ─────────────────────────────────────────────────
	food := api.Group("/food")
	{
		food.GET("/shop/:shopId", h.Food.ItemsByShop)
		food.GET("/:id", h.Food.GetFoodItem)
		food.POST("", h.Identity, h.Food.CreateFoodItem)
		food.PUT("/:id", h.Identity, h.Food.UpdateFoodItem)
		food.PUT("/:id/quantity", h.Identity, h.Food.UpdateQuantity)
		food.DELETE("/:id", h.Identity, h.Food.DeleteFoodItem)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := api.Group("/orders", h.Identity)
	{
		orders.GET("/my-orders", h.Orders.MyOrders)
		orders.GET("/shop/:shopId", h.Orders.OrdersByShop)
		orders.GET("/shop/:shopId/status/:status", h.Orders.OrdersByShopAndStatus)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.POST("", h.Orders.CreateOrder)
		orders.PUT("/:id/status", h.Orders.UpdateOrderStatus)
	}

	// Lifecycle documentation (public)
	api.GET("/state-machine", h.Orders.StateMachineInfo)

	// ── Legacy canteen quick-orders ────────────────────────────────
	canteen := api.Group("/canteen")
	{
		canteen.GET("/test", h.Canteen.Test)
		canteen.POST("/orders", h.Canteen.CreateOrder)
		canteen.GET("", h.Canteen.ListOrders)
		canteen.GET("/:id", h.Canteen.GetOrder)
		canteen.GET("/status/:status", h.Canteen.OrdersByStatus)
		canteen.PUT("/:id", h.Canteen.UpdateOrder)
		canteen.PATCH("/:id/status", h.Canteen.UpdateOrderStatus)
		canteen.DELETE("/:id", h.Canteen.DeleteOrder)
	}
}
