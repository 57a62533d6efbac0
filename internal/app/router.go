package app

import (
	"github.com/gin-gonic/gin"

	"github.com/zeon9405/unikraft/internal/pkg/logger"
	"github.com/zeon9405/unikraft/internal/server"
)

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		AuthMiddleware: middleware.Auth,
		AuthHandler:    handlers.Auth,
		MemberHandler:  handlers.Member,
		ProductHandler: handlers.Product,
		CartHandler:    handlers.Cart,
		OrderHandler:   handlers.Order,
	})
}
