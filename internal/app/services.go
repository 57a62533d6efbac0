package app

import (
	"gorm.io/gorm"

	"github.com/zeon9405/unikraft/internal/pkg/logger"
	"github.com/zeon9405/unikraft/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Member   services.MemberService
	Product  services.ProductService
	Cart     services.CartService
	Checkout services.CheckoutService
	Seed     services.SeedService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:     services.NewAuthService(db, log, repos.Member, repos.Cart, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Member:   services.NewMemberService(db, log, repos.Member, repos.Cart),
		Product:  services.NewProductService(db, log, repos.Product, repos.Category),
		Cart:     services.NewCartService(db, log, repos.Cart, repos.Product),
		Checkout: services.NewCheckoutService(db, log, repos.Product, repos.Order),
		Seed:     services.NewSeedService(db, log, repos.Member, repos.Cart, repos.Category, repos.Product),
	}
}
