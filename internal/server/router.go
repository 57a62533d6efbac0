package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zeon9405/unikraft/internal/http/handlers"
	"github.com/zeon9405/unikraft/internal/http/middleware"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *middleware.AuthMiddleware
	AuthHandler    *handlers.AuthHandler
	MemberHandler  *handlers.MemberHandler
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
	OrderHandler   *handlers.OrderHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/signup", cfg.AuthHandler.SignUp)
		api.POST("/login", cfg.AuthHandler.Login)
		api.GET("/products", cfg.ProductHandler.List)
		api.GET("/products/:productID", cfg.ProductHandler.Get)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Member
	protected.GET("/me", cfg.MemberHandler.GetMe)
	protected.DELETE("/me", cfg.MemberHandler.DeleteMe)
	// Catalog
	protected.POST("/products", cfg.ProductHandler.Create)
	protected.POST("/products/:productID/stock", cfg.ProductHandler.AdjustStock)
	// Cart
	protected.GET("/cart", cfg.CartHandler.GetCart)
	protected.POST("/cart/items", cfg.CartHandler.AddItem)
	protected.PATCH("/cart/items/:itemID", cfg.CartHandler.ChangeQuantity)
	protected.DELETE("/cart/items/:itemID", cfg.CartHandler.RemoveItem)
	protected.DELETE("/cart/items", cfg.CartHandler.Clear)
	// Orders
	protected.POST("/orders", cfg.OrderHandler.PlaceOrder)
	protected.GET("/orders", cfg.OrderHandler.MyOrders)
	protected.GET("/orders/:orderID", cfg.OrderHandler.GetOrder)

	return router
}
