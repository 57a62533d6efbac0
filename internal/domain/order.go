package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a frozen ledger entry: once constructed it only exposes reads.
// It is never cascade-deleted with its member.
type Order struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID  uuid.UUID   `gorm:"type:uuid;index;not null;column:member_id" json:"member_id"`
	OrderDate time.Time   `gorm:"not null;column:order_date" json:"order_date"`
	Status    OrderStatus `gorm:"type:varchar(16);not null;column:status" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null;column:order_id" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;column:product_id" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	// OrderPrice is the unit price copied at purchase time. Catalog price
	// changes after the fact do not reach it.
	OrderPrice int `gorm:"not null;column:order_price" json:"order_price"`
	Count      int `gorm:"not null;column:count" json:"count"`
}

func (OrderItem) TableName() string { return "order_item" }

// NewOrderItem locks the given price into the line. Stock is not touched
// here; the checkout workflow decrements it before any order is built.
func NewOrderItem(product *Product, orderPrice, count int) (*OrderItem, error) {
	if product == nil {
		return nil, fmt.Errorf("order item needs a product: %w", pkgerrors.ErrNotFound)
	}
	if count <= 0 {
		return nil, fmt.Errorf("order item count %d: %w", count, pkgerrors.ErrInvalidQuantity)
	}
	return &OrderItem{
		ID:         uuid.New(),
		ProductID:  product.ID,
		Product:    product,
		OrderPrice: orderPrice,
		Count:      count,
	}, nil
}

// NewOrder builds a PLACED order from already-validated items, linking both
// sides of the order<->item relation. Pure construction, no stock mutation.
func NewOrder(memberID uuid.UUID, items ...*OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, pkgerrors.ErrEmptyOrder
	}
	order := &Order{
		ID:        uuid.New(),
		MemberID:  memberID,
		OrderDate: time.Now(),
		Status:    OrderStatusPlaced,
	}
	for _, item := range items {
		if item == nil {
			return nil, pkgerrors.ErrEmptyOrder
		}
		item.OrderID = order.ID
		order.Items = append(order.Items, *item)
	}
	return order, nil
}

func (o *Order) TotalPrice() int {
	total := 0
	for i := range o.Items {
		total += o.Items[i].OrderPrice * o.Items[i].Count
	}
	return total
}
