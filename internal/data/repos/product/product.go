package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	types "github.com/zeon9405/unikraft/internal/domain"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error)
	GetByID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.Product, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error)
	ListByCategoryName(ctx context.Context, tx *gorm.DB, categoryName string) ([]*types.Product, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, productID uuid.UUID, quantity int) error
	IncrementStock(ctx context.Context, tx *gorm.DB, productID uuid.UUID, quantity int) error
	UpdatePrice(ctx context.Context, tx *gorm.DB, productID uuid.UUID, price int) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(products) == 0 {
		return []*types.Product{}, nil
	}
	if err := transaction.WithContext(ctx).Omit("Category").Create(&products).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return products, nil
}

func (pr *productRepo) GetByID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.Product
	if err := transaction.WithContext(ctx).
		Preload("Category").
		Where("id = ?", productID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (pr *productRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Product
	if err := transaction.WithContext(ctx).
		Preload("Category").
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) ListByCategoryName(ctx context.Context, tx *gorm.DB, categoryName string) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Product
	if err := transaction.WithContext(ctx).
		Preload("Category").
		Joins("JOIN product_category ON product_category.id = product.category_id").
		Where("product_category.name = ?", categoryName).
		Order("product.created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DecrementStock applies the decrement as a single conditional update so two
// checkouts racing for the last unit cannot both pass the stock check.
func (pr *productRepo) DecrementStock(ctx context.Context, tx *gorm.DB, productID uuid.UUID, quantity int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if quantity <= 0 {
		return fmt.Errorf("decrement stock of %s by %d: %w", productID, quantity, pkgerrors.ErrInvalidQuantity)
	}

	result := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := transaction.WithContext(ctx).
			Model(&types.Product{}).
			Where("id = ?", productID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("product %s: %w", productID, pkgerrors.ErrNotFound)
		}
		return fmt.Errorf("product %s, requested %d: %w", productID, quantity, pkgerrors.ErrInsufficientStock)
	}
	return nil
}

func (pr *productRepo) IncrementStock(ctx context.Context, tx *gorm.DB, productID uuid.UUID, quantity int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if quantity <= 0 {
		return fmt.Errorf("increment stock of %s by %d: %w", productID, quantity, pkgerrors.ErrInvalidQuantity)
	}
	result := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", productID, pkgerrors.ErrNotFound)
	}
	return nil
}

func (pr *productRepo) UpdatePrice(ctx context.Context, tx *gorm.DB, productID uuid.UUID, price int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	result := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ?", productID).
		Update("price", price)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", productID, pkgerrors.ErrNotFound)
	}
	return nil
}

// mapStoreError folds postgres transaction conflicts into the domain
// sentinel so callers can decide whether to retry.
func mapStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s: %w", pgErr.Message, pkgerrors.ErrConflictingUpdate)
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", pgErr.Message, pkgerrors.ErrDuplicateCredential)
		}
	}
	return err
}
