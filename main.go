package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"online-canteen-api/config"
	"online-canteen-api/handlers"
	"online-canteen-api/middleware"
	"online-canteen-api/routes"
	"online-canteen-api/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	config.LoadEnv()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	db := config.InitDB(time.Now)
	config.Seed(db)

	userSvc := services.NewUserService(db, time.Now)
	shopSvc := services.NewShopService(db)
	foodSvc := services.NewFoodItemService(db)
	orderSvc := services.NewOrderService(db)
	canteenSvc := services.NewCanteenService(db, time.Now)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Online Canteen Ordering API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, routes.Handlers{
		Auth:     &handlers.AuthHandler{Users: userSvc},
		Shops:    &handlers.ShopHandler{Shops: shopSvc},
		Food:     &handlers.FoodHandler{Foods: foodSvc, Shops: shopSvc},
		Orders:   &handlers.OrderHandler{Orders: orderSvc, Shops: shopSvc},
		Canteen:  &handlers.CanteenHandler{Canteen: canteenSvc},
		Identity: middleware.IdentityRequired(userSvc),
	})

	port := config.GetEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
