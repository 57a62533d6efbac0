package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	cartrepo "github.com/zeon9405/unikraft/internal/data/repos/cart"
	memberrepo "github.com/zeon9405/unikraft/internal/data/repos/member"
	productrepo "github.com/zeon9405/unikraft/internal/data/repos/product"
	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

// SeedService loads the demo fixtures on an empty database: one test member
// and a small two-category catalog.
type SeedService interface {
	Run(ctx context.Context) error
}

type seedService struct {
	db           *gorm.DB
	log          *logger.Logger
	memberRepo   memberrepo.MemberRepo
	cartRepo     cartrepo.CartRepo
	categoryRepo productrepo.CategoryRepo
	productRepo  productrepo.ProductRepo
}

func NewSeedService(
	db *gorm.DB,
	log *logger.Logger,
	memberRepo memberrepo.MemberRepo,
	cartRepo cartrepo.CartRepo,
	categoryRepo productrepo.CategoryRepo,
	productRepo productrepo.ProductRepo,
) SeedService {
	serviceLog := log.With("service", "SeedService")
	return &seedService{
		db:           db,
		log:          serviceLog,
		memberRepo:   memberRepo,
		cartRepo:     cartRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (ss *seedService) Run(ctx context.Context) error {
	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ss.seedMember(ctx, tx); err != nil {
			return err
		}
		return ss.seedCatalog(ctx, tx)
	})
}

func (ss *seedService) seedMember(ctx context.Context, tx *gorm.DB) error {
	count, err := ss.memberRepo.Count(ctx, tx)
	if err != nil {
		return fmt.Errorf("count members: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	m := types.NewMember("testuser", "test@test.com", string(hashed), "Test User")
	if _, err := ss.memberRepo.Create(ctx, tx, []*types.Member{m}); err != nil {
		return fmt.Errorf("seed member: %w", err)
	}
	if _, err := ss.cartRepo.Create(ctx, tx, types.NewCart(m.ID)); err != nil {
		return fmt.Errorf("seed cart: %w", err)
	}
	ss.log.Info("seeded test member", "login_id", "testuser")
	return nil
}

func (ss *seedService) seedCatalog(ctx context.Context, tx *gorm.DB) error {
	count, err := ss.categoryRepo.Count(ctx, tx)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tea := types.NewProductCategory("TEA")
	dessert := types.NewProductCategory("DESSERT")
	if _, err := ss.categoryRepo.Create(ctx, tx, []*types.ProductCategory{tea, dessert}); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	productCount, err := ss.productRepo.Count(ctx, tx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if productCount > 0 {
		return nil
	}

	products := []*types.Product{
		types.NewProduct("Green Tea", 5000, "Fresh green tea", "tea.jpg", tea.ID, 100),
		types.NewProduct("Choco Cake", 7000, "Sweet chocolate cake", "cake.jpg", dessert.ID, 50),
	}
	if _, err := ss.productRepo.Create(ctx, tx, products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	ss.log.Info("seeded catalog", "products", len(products))
	return nil
}
