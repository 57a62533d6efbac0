package app

import (
	"gorm.io/gorm"

	cartrepo "github.com/zeon9405/unikraft/internal/data/repos/cart"
	memberrepo "github.com/zeon9405/unikraft/internal/data/repos/member"
	orderrepo "github.com/zeon9405/unikraft/internal/data/repos/order"
	productrepo "github.com/zeon9405/unikraft/internal/data/repos/product"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type Repos struct {
	Member   memberrepo.MemberRepo
	Category productrepo.CategoryRepo
	Product  productrepo.ProductRepo
	Cart     cartrepo.CartRepo
	Order    orderrepo.OrderRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Member:   memberrepo.NewMemberRepo(db, log),
		Category: productrepo.NewCategoryRepo(db, log),
		Product:  productrepo.NewProductRepo(db, log),
		Cart:     cartrepo.NewCartRepo(db, log),
		Order:    orderrepo.NewOrderRepo(db, log),
	}
}
