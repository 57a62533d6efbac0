package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cartrepo "github.com/zeon9405/unikraft/internal/data/repos/cart"
	productrepo "github.com/zeon9405/unikraft/internal/data/repos/product"
	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/pkg/ctxutil"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

// CartService runs every mutation inside one transaction so the add-or-merge
// decision and the item write cannot interleave with another mutation on the
// same cart. The cart never checks stock: it is a wish-list, not a
// reservation.
type CartService interface {
	GetCart(ctx context.Context) (*types.Cart, error)
	AddItem(ctx context.Context, productID uuid.UUID, quantity int) (*types.Cart, error)
	ChangeQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*types.Cart, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) (*types.Cart, error)
	Clear(ctx context.Context) (*types.Cart, error)
}

type cartService struct {
	db          *gorm.DB
	log         *logger.Logger
	cartRepo    cartrepo.CartRepo
	productRepo productrepo.ProductRepo
}

func NewCartService(db *gorm.DB, log *logger.Logger, cartRepo cartrepo.CartRepo, productRepo productrepo.ProductRepo) CartService {
	serviceLog := log.With("service", "CartService")
	return &cartService{db: db, log: serviceLog, cartRepo: cartRepo, productRepo: productRepo}
}

func (cs *cartService) GetCart(ctx context.Context) (*types.Cart, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	return cs.cartRepo.GetByMemberID(ctx, nil, rd.MemberID)
}

func (cs *cartService) AddItem(ctx context.Context, productID uuid.UUID, quantity int) (*types.Cart, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("add %d to cart: %w", quantity, pkgerrors.ErrInvalidQuantity)
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := cs.cartRepo.GetByMemberID(ctx, tx, rd.MemberID)
		if err != nil {
			return err
		}
		product, err := cs.productRepo.GetByID(ctx, tx, productID)
		if err != nil {
			return err
		}

		existing, err := cs.cartRepo.GetItemByProduct(ctx, tx, cart.ID, productID)
		switch {
		case err == nil:
			// same product twice merges quantities instead of adding a line
			if err := existing.AddQuantity(quantity); err != nil {
				return err
			}
			return cs.cartRepo.UpdateItemQuantity(ctx, tx, existing.ID, existing.Quantity)
		case errors.Is(err, pkgerrors.ErrNotFound):
			item, err := types.NewCartItem(product, quantity)
			if err != nil {
				return err
			}
			item.CartID = cart.ID
			_, err = cs.cartRepo.CreateItem(ctx, tx, item)
			return err
		default:
			return err
		}
	}); err != nil {
		return nil, err
	}

	return cs.cartRepo.GetByMemberID(ctx, nil, rd.MemberID)
}

func (cs *cartService) ChangeQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*types.Cart, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	if quantity <= 0 {
		// zero is not a shortcut for removal
		return nil, fmt.Errorf("change quantity to %d: %w", quantity, pkgerrors.ErrInvalidQuantity)
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := cs.cartRepo.GetByMemberID(ctx, tx, rd.MemberID)
		if err != nil {
			return err
		}
		item, err := cs.cartRepo.GetItem(ctx, tx, cart.ID, itemID)
		if err != nil {
			return err
		}
		if err := item.ChangeQuantity(quantity); err != nil {
			return err
		}
		return cs.cartRepo.UpdateItemQuantity(ctx, tx, item.ID, item.Quantity)
	}); err != nil {
		return nil, err
	}

	return cs.cartRepo.GetByMemberID(ctx, nil, rd.MemberID)
}

func (cs *cartService) RemoveItem(ctx context.Context, itemID uuid.UUID) (*types.Cart, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := cs.cartRepo.GetByMemberID(ctx, tx, rd.MemberID)
		if err != nil {
			return err
		}
		// scope the lookup to the caller's cart so nobody deletes items
		// out of someone else's
		item, err := cs.cartRepo.GetItem(ctx, tx, cart.ID, itemID)
		if err != nil {
			return err
		}
		return cs.cartRepo.DeleteItem(ctx, tx, item.ID)
	}); err != nil {
		return nil, err
	}

	return cs.cartRepo.GetByMemberID(ctx, nil, rd.MemberID)
}

func (cs *cartService) Clear(ctx context.Context) (*types.Cart, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := cs.cartRepo.GetByMemberID(ctx, tx, rd.MemberID)
		if err != nil {
			return err
		}
		return cs.cartRepo.DeleteItemsByCartID(ctx, tx, cart.ID)
	}); err != nil {
		return nil, err
	}

	return cs.cartRepo.GetByMemberID(ctx, nil, rd.MemberID)
}
