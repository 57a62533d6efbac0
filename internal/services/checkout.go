package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	orderrepo "github.com/zeon9405/unikraft/internal/data/repos/order"
	productrepo "github.com/zeon9405/unikraft/internal/data/repos/product"
	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/pkg/ctxutil"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

// CheckoutService turns one product line into a placed order. The stock
// decrement and the order insert commit together or not at all; a checkout
// that fails on stock leaves no trace. Each call handles one product line;
// iterating a whole cart is a separate design decision that has not been taken.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, productID uuid.UUID, count int) (uuid.UUID, error)
	MyOrders(ctx context.Context) ([]*types.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*types.Order, error)
}

type checkoutService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo productrepo.ProductRepo
	orderRepo   orderrepo.OrderRepo
}

func NewCheckoutService(db *gorm.DB, log *logger.Logger, productRepo productrepo.ProductRepo, orderRepo orderrepo.OrderRepo) CheckoutService {
	serviceLog := log.With("service", "CheckoutService")
	return &checkoutService{db: db, log: serviceLog, productRepo: productRepo, orderRepo: orderRepo}
}

func (cs *checkoutService) PlaceOrder(ctx context.Context, productID uuid.UUID, count int) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return uuid.Nil, pkgerrors.ErrUnauthorized
	}
	if count <= 0 {
		return uuid.Nil, fmt.Errorf("order count %d: %w", count, pkgerrors.ErrInvalidQuantity)
	}

	var orderID uuid.UUID
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := cs.productRepo.GetByID(ctx, tx, productID)
		if err != nil {
			return err
		}

		// Stock comes off before the order exists. The decrement is a
		// conditional update, so when two checkouts race for the last unit
		// exactly one gets past this line.
		if err := cs.productRepo.DecrementStock(ctx, tx, product.ID, count); err != nil {
			return err
		}

		item, err := types.NewOrderItem(product, product.Price, count)
		if err != nil {
			return err
		}
		order, err := types.NewOrder(rd.MemberID, item)
		if err != nil {
			return err
		}
		if _, err := cs.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		orderID = order.ID
		return nil
	}); err != nil {
		return uuid.Nil, err
	}

	cs.log.Info("order placed",
		"order_id", orderID.String(),
		"member_id", rd.MemberID.String(),
		"product_id", productID.String(),
		"count", count,
	)
	return orderID, nil
}

func (cs *checkoutService) MyOrders(ctx context.Context) ([]*types.Order, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	return cs.orderRepo.ListByMemberID(ctx, nil, rd.MemberID)
}

func (cs *checkoutService) GetOrder(ctx context.Context, orderID uuid.UUID) (*types.Order, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	order, err := cs.orderRepo.GetByID(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}
	if order.MemberID != rd.MemberID {
		return nil, fmt.Errorf("order %s: %w", orderID, pkgerrors.ErrNotFound)
	}
	return order, nil
}
