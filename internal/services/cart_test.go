package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

func TestCartAddItemAndMerge(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.signUpMember(t, "carter1")
	tea := env.seedProduct(t, "Green Tea", 5000, 100)

	cart, err := env.cart.AddItem(ctx, tea.ID, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("unexpected cart after first add: %+v", cart.Items)
	}

	cart, err = env.cart.AddItem(ctx, tea.ID, 2)
	if err != nil {
		t.Fatalf("AddItem (merge): %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("same product must merge into one line, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart.Items[0].Quantity)
	}
	if cart.TotalItemCount() != 5 {
		t.Fatalf("TotalItemCount: expected 5, got %d", cart.TotalItemCount())
	}
	if cart.TotalPrice() != 25000 {
		t.Fatalf("TotalPrice: expected 25000, got %d", cart.TotalPrice())
	}
}

func TestCartAddDoesNotCheckStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.signUpMember(t, "carter2")
	tea := env.seedProduct(t, "Green Tea", 5000, 2)

	// the cart is a wish-list: 50 of a 2-stock product is fine here
	cart, err := env.cart.AddItem(ctx, tea.ID, 50)
	if err != nil {
		t.Fatalf("AddItem over stock: %v", err)
	}
	if cart.Items[0].Quantity != 50 {
		t.Fatalf("expected quantity 50, got %d", cart.Items[0].Quantity)
	}
	if got := env.stockOf(t, tea.ID); got != 2 {
		t.Fatalf("cart add must not touch stock, got %d", got)
	}
}

func TestCartChangeQuantity(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.signUpMember(t, "carter3")
	tea := env.seedProduct(t, "Green Tea", 5000, 100)

	cart, err := env.cart.AddItem(ctx, tea.ID, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := cart.Items[0].ID

	cart, err = env.cart.ChangeQuantity(ctx, itemID, 8)
	if err != nil {
		t.Fatalf("ChangeQuantity: %v", err)
	}
	if cart.Items[0].Quantity != 8 {
		t.Fatalf("expected quantity 8, got %d", cart.Items[0].Quantity)
	}

	if _, err := env.cart.ChangeQuantity(ctx, itemID, 0); !errors.Is(err, pkgerrors.ErrInvalidQuantity) {
		t.Fatalf("ChangeQuantity(0): expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := env.cart.ChangeQuantity(ctx, uuid.New(), 2); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("ChangeQuantity (missing item): expected ErrNotFound, got %v", err)
	}
}

func TestCartRemoveItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.signUpMember(t, "carter4")
	tea := env.seedProduct(t, "Green Tea", 5000, 100)

	cart, err := env.cart.AddItem(ctx, tea.ID, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := cart.Items[0].ID

	cart, err = env.cart.RemoveItem(ctx, itemID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}

	if _, err := env.cart.RemoveItem(ctx, itemID); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("RemoveItem twice: expected ErrNotFound, got %v", err)
	}
}

func TestCartRemoveItemScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signUpMember(t, "carter5")
	stranger := env.signUpMember(t, "carter6")
	tea := env.seedProduct(t, "Green Tea", 5000, 100)

	cart, err := env.cart.AddItem(owner, tea.ID, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := cart.Items[0].ID

	if _, err := env.cart.RemoveItem(stranger, itemID); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("stranger removing item: expected ErrNotFound, got %v", err)
	}
	cart, err = env.cart.GetCart(owner)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("owner's item must survive, got %d items", len(cart.Items))
	}
}

func TestCartClear(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.signUpMember(t, "carter7")
	tea := env.seedProduct(t, "Green Tea", 5000, 100)
	cake := env.seedProduct(t, "Choco Cake", 7000, 50)

	if _, err := env.cart.AddItem(ctx, tea.ID, 3); err != nil {
		t.Fatalf("AddItem tea: %v", err)
	}
	if _, err := env.cart.AddItem(ctx, cake.ID, 2); err != nil {
		t.Fatalf("AddItem cake: %v", err)
	}

	cart, err := env.cart.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart after Clear, got %d items", len(cart.Items))
	}
	if cart.TotalPrice() != 0 {
		t.Fatalf("expected zero total after Clear, got %d", cart.TotalPrice())
	}
}

func TestCartRequiresIdentity(t *testing.T) {
	env := newTestEnv(t)
	tea := env.seedProduct(t, "Green Tea", 5000, 100)

	if _, err := env.cart.AddItem(context.Background(), tea.ID, 1); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := env.cart.GetCart(context.Background()); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
