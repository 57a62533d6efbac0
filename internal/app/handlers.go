package app

import (
	"github.com/zeon9405/unikraft/internal/http/handlers"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Member  *handlers.MemberHandler
	Product *handlers.ProductHandler
	Cart    *handlers.CartHandler
	Order   *handlers.OrderHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:    handlers.NewAuthHandler(services.Auth),
		Member:  handlers.NewMemberHandler(services.Member),
		Product: handlers.NewProductHandler(services.Product),
		Cart:    handlers.NewCartHandler(services.Cart),
		Order:   handlers.NewOrderHandler(services.Checkout),
	}
}
