package order

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/zeon9405/unikraft/internal/data/repos/testutil"
	types "github.com/zeon9405/unikraft/internal/domain"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

func TestOrderRepoCreateAndList(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	m := testutil.SeedMember(t, ctx, tx, "orderrepo1")
	cat := testutil.SeedCategory(t, ctx, tx, "TEA-orderrepo")
	p := testutil.SeedProduct(t, ctx, tx, cat.ID, "Green Tea", 5000, 100)

	item, err := types.NewOrderItem(p, p.Price, 3)
	if err != nil {
		t.Fatalf("NewOrderItem: %v", err)
	}
	o, err := types.NewOrder(m.ID, item)
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	if _, err := repo.Create(ctx, tx, o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, o.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != types.OrderStatusPlaced {
		t.Fatalf("expected PLACED, got %s", got.Status)
	}
	if len(got.Items) != 1 || got.Items[0].OrderPrice != 5000 || got.Items[0].Count != 3 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
	if got.Items[0].Product == nil || got.Items[0].Product.Name != "Green Tea" {
		t.Fatalf("product not loaded: %+v", got.Items[0].Product)
	}

	mine, err := repo.ListByMemberID(ctx, tx, m.ID)
	if err != nil {
		t.Fatalf("ListByMemberID: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != o.ID {
		t.Fatalf("ListByMemberID: unexpected result: %+v", mine)
	}

	other, err := repo.ListByMemberID(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("ListByMemberID (other): %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no orders for stranger, got %d", len(other))
	}
}

func TestOrderRepoCreateRejectsEmpty(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, tx, &types.Order{ID: uuid.New()}); !errors.Is(err, pkgerrors.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderRepoGetByIDMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, tx, uuid.New()); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
