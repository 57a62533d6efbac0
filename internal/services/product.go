package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	productrepo "github.com/zeon9405/unikraft/internal/data/repos/product"
	types "github.com/zeon9405/unikraft/internal/domain"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type CreateProductInput struct {
	Name         string
	Price        int
	Description  string
	ImageURL     string
	CategoryName string
	StockQty     int
}

type ProductService interface {
	List(ctx context.Context, categoryName string) ([]*types.Product, error)
	Get(ctx context.Context, productID uuid.UUID) (*types.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*types.Product, error)
	AddStock(ctx context.Context, productID uuid.UUID, quantity int) error
	RemoveStock(ctx context.Context, productID uuid.UUID, quantity int) error
}

type productService struct {
	db           *gorm.DB
	log          *logger.Logger
	productRepo  productrepo.ProductRepo
	categoryRepo productrepo.CategoryRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo productrepo.ProductRepo, categoryRepo productrepo.CategoryRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo, categoryRepo: categoryRepo}
}

func (ps *productService) List(ctx context.Context, categoryName string) ([]*types.Product, error) {
	if categoryName != "" {
		return ps.productRepo.ListByCategoryName(ctx, nil, categoryName)
	}
	return ps.productRepo.List(ctx, nil)
}

// Get returns a point-in-time snapshot; concurrent checkouts may change the
// stock figure before the caller acts on it.
func (ps *productService) Get(ctx context.Context, productID uuid.UUID) (*types.Product, error) {
	return ps.productRepo.GetByID(ctx, nil, productID)
}

func (ps *productService) Create(ctx context.Context, in CreateProductInput) (*types.Product, error) {
	if in.Name == "" || in.Price < 0 || in.StockQty < 0 {
		return nil, fmt.Errorf("invalid product input: %w", pkgerrors.ErrInvalidQuantity)
	}

	var created *types.Product
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cat, err := ps.categoryRepo.GetByName(ctx, tx, in.CategoryName)
		if errors.Is(err, pkgerrors.ErrNotFound) {
			cats, cErr := ps.categoryRepo.Create(ctx, tx, []*types.ProductCategory{types.NewProductCategory(in.CategoryName)})
			if cErr != nil {
				return fmt.Errorf("create category: %w", cErr)
			}
			cat = cats[0]
		} else if err != nil {
			return fmt.Errorf("resolve category: %w", err)
		}

		p := types.NewProduct(in.Name, in.Price, in.Description, in.ImageURL, cat.ID, in.StockQty)
		if _, err := ps.productRepo.Create(ctx, tx, []*types.Product{p}); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		created = p
		return nil
	}); err != nil {
		return nil, err
	}
	ps.log.Info("product created", "product_id", created.ID.String(), "name", created.Name)
	return created, nil
}

func (ps *productService) AddStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ps.productRepo.IncrementStock(ctx, tx, productID, quantity)
	})
}

func (ps *productService) RemoveStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ps.productRepo.DecrementStock(ctx, tx, productID, quantity)
	})
}
