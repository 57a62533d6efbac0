package services

import (
	"errors"
	"testing"

	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

func TestDeleteMeCascadesCartButKeepsOrders(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.signUpMember(t, "leaver1")
	tea := env.seedProduct(t, "Green Tea", 5000, 100)

	if _, err := env.cart.AddItem(ctx, tea.ID, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	orderID, err := env.checkout.PlaceOrder(ctx, tea.ID, 1)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if err := env.member.DeleteMe(ctx); err != nil {
		t.Fatalf("DeleteMe: %v", err)
	}

	if _, err := env.member.GetMe(ctx); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("member should be gone, got %v", err)
	}
	if _, err := env.cart.GetCart(ctx); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("cart should be gone with the member, got %v", err)
	}

	// orders outlive the member: they are a durable record
	order, err := env.orderRepo.GetByID(ctx, nil, orderID)
	if err != nil {
		t.Fatalf("order must survive member deletion: %v", err)
	}
	if order.Items[0].OrderPrice != 5000 {
		t.Fatalf("surviving order lost its data: %+v", order.Items[0])
	}
}
