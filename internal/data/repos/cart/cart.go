package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/zeon9405/unikraft/internal/domain"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type CartRepo interface {
	Create(ctx context.Context, tx *gorm.DB, cart *types.Cart) (*types.Cart, error)
	GetByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) (*types.Cart, error)
	GetItem(ctx context.Context, tx *gorm.DB, cartID, itemID uuid.UUID) (*types.CartItem, error)
	GetItemByProduct(ctx context.Context, tx *gorm.DB, cartID, productID uuid.UUID) (*types.CartItem, error)
	CreateItem(ctx context.Context, tx *gorm.DB, item *types.CartItem) (*types.CartItem, error)
	UpdateItemQuantity(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
	DeleteItemsByCartID(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) error
	DeleteByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) error
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	repoLog := baseLog.With("repo", "CartRepo")
	return &cartRepo{db: db, log: repoLog}
}

func (cr *cartRepo) Create(ctx context.Context, tx *gorm.DB, cart *types.Cart) (*types.Cart, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// GetByMemberID loads the cart with items and their products. Association
// loading is explicit: callers that only need the cart row should not pay
// for the preloads, but every current caller renders items.
func (cr *cartRepo) GetByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) (*types.Cart, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.Cart
	if err := transaction.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_item.created_at") }).
		Preload("Items.Product").
		Where("member_id = ?", memberID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart of member %s: %w", memberID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (cr *cartRepo) GetItem(ctx context.Context, tx *gorm.DB, cartID, itemID uuid.UUID) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.CartItem
	if err := transaction.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %s: %w", itemID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (cr *cartRepo) GetItemByProduct(ctx context.Context, tx *gorm.DB, cartID, productID uuid.UUID) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.CartItem
	if err := transaction.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart %s has no item for product %s: %w", cartID, productID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (cr *cartRepo) CreateItem(ctx context.Context, tx *gorm.DB, item *types.CartItem) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Omit("Product").Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (cr *cartRepo) UpdateItemQuantity(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, quantity int) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	result := transaction.WithContext(ctx).
		Model(&types.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, pkgerrors.ErrNotFound)
	}
	return nil
}

func (cr *cartRepo) DeleteItem(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	result := transaction.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&types.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, pkgerrors.ErrNotFound)
	}
	return nil
}

func (cr *cartRepo) DeleteItemsByCartID(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&types.CartItem{}).Error
}

// DeleteByMemberID removes the cart and all of its items. The aggregate owns
// its children: item rows never survive their cart.
func (cr *cartRepo) DeleteByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var cart types.Cart
	if err := transaction.WithContext(ctx).
		Where("member_id = ?", memberID).
		First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := cr.DeleteItemsByCartID(ctx, transaction, cart.ID); err != nil {
		return err
	}
	return transaction.WithContext(ctx).
		Where("id = ?", cart.ID).
		Delete(&types.Cart{}).Error
}
