package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/zeon9405/unikraft/internal/domain"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error)
	GetByID(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) (*types.Order, error)
	ListByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) ([]*types.Order, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

// Create inserts the order row and its item rows explicitly, without gorm's
// association upserts, so a loaded Product pointer can never be re-written
// through an order insert.
func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if order == nil || len(order.Items) == 0 {
		return nil, pkgerrors.ErrEmptyOrder
	}
	if err := transaction.WithContext(ctx).
		Omit(clause.Associations).
		Create(order).Error; err != nil {
		return nil, err
	}
	for i := range order.Items {
		if err := transaction.WithContext(ctx).
			Omit(clause.Associations).
			Create(&order.Items[i]).Error; err != nil {
			return nil, err
		}
	}
	return order, nil
}

func (or *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var result types.Order
	if err := transaction.WithContext(ctx).
		Preload("Items.Product").
		Where("id = ?", orderID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (or *orderRepo) ListByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var results []*types.Order
	if err := transaction.WithContext(ctx).
		Preload("Items.Product").
		Where("member_id = ?", memberID).
		Order("order_date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
