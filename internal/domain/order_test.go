package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

func TestNewOrderLinksItemsBothWays(t *testing.T) {
	memberID := uuid.New()
	tea := testProduct("tea", 5000, 100)

	item, err := NewOrderItem(tea, tea.Price, 3)
	if err != nil {
		t.Fatalf("NewOrderItem: %v", err)
	}
	order, err := NewOrder(memberID, item)
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}

	if order.Status != OrderStatusPlaced {
		t.Fatalf("expected status PLACED, got %s", order.Status)
	}
	if order.OrderDate.IsZero() {
		t.Fatalf("expected order date to be set")
	}
	if len(order.Items) != 1 || order.Items[0].OrderID != order.ID {
		t.Fatalf("item not linked to order: %+v", order.Items)
	}
}

func TestNewOrderRejectsEmptyItems(t *testing.T) {
	if _, err := NewOrder(uuid.New()); !errors.Is(err, pkgerrors.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderItemPriceIsFrozen(t *testing.T) {
	tea := testProduct("tea", 5000, 100)
	item, err := NewOrderItem(tea, tea.Price, 3)
	if err != nil {
		t.Fatalf("NewOrderItem: %v", err)
	}
	order, err := NewOrder(uuid.New(), item)
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}

	tea.Price = 9000
	if order.Items[0].OrderPrice != 5000 {
		t.Fatalf("order price must stay 5000, got %d", order.Items[0].OrderPrice)
	}
	if order.TotalPrice() != 15000 {
		t.Fatalf("expected total 15000, got %d", order.TotalPrice())
	}
}

func TestNewOrderItemRejectsBadInput(t *testing.T) {
	tea := testProduct("tea", 5000, 100)
	if _, err := NewOrderItem(tea, tea.Price, 0); !errors.Is(err, pkgerrors.ErrInvalidQuantity) {
		t.Fatalf("count 0: expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := NewOrderItem(nil, 0, 1); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("nil product: expected ErrNotFound, got %v", err)
	}
}
