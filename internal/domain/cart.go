package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

// Cart is the aggregate root for a member's cart. Exactly one cart exists
// per member; CartItems live and die with it. All item mutations go through
// the cart so both sides of the cart<->item link stay in agreement.
type Cart struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null;column:member_id" json:"member_id"`
	Items    []CartItem `gorm:"foreignKey:CartID" json:"items"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Cart) TableName() string { return "cart" }

func NewCart(memberID uuid.UUID) *Cart {
	return &Cart{ID: uuid.New(), MemberID: memberID}
}

type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CartID    uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_cart_item_product;not null;column:cart_id" json:"cart_id"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_item_product;not null;column:product_id" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null;column:quantity" json:"quantity"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CartItem) TableName() string { return "cart_item" }

// NewCartItem validates at construction; there is no way to obtain a cart
// item with a non-positive quantity or no product.
func NewCartItem(product *Product, quantity int) (*CartItem, error) {
	if product == nil {
		return nil, fmt.Errorf("cart item needs a product: %w", pkgerrors.ErrNotFound)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("cart item quantity %d: %w", quantity, pkgerrors.ErrInvalidQuantity)
	}
	return &CartItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
	}, nil
}

func (ci *CartItem) AddQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("add quantity %d: %w", quantity, pkgerrors.ErrInvalidQuantity)
	}
	ci.Quantity += quantity
	return nil
}

// ChangeQuantity replaces the quantity outright. Removing the item is the
// only way to reach zero.
func (ci *CartItem) ChangeQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("change quantity to %d: %w", quantity, pkgerrors.ErrInvalidQuantity)
	}
	ci.Quantity = quantity
	return nil
}

// TotalPrice uses the product's current price, not a locked one. The cart is
// a wish-list; prices freeze only at checkout.
func (ci *CartItem) TotalPrice() int {
	if ci.Product == nil {
		return 0
	}
	return ci.Product.Price * ci.Quantity
}

// SameProduct compares by product identity, not struct identity.
func (ci *CartItem) SameProduct(product *Product) bool {
	return product != nil && ci.ProductID == product.ID
}

// ItemFor returns the cart's item for the given product, or nil.
func (c *Cart) ItemFor(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem merges into an existing item for the same product or links a new
// one, keeping cart->item and item->cart in step.
func (c *Cart) AddItem(item *CartItem) error {
	if item == nil {
		return fmt.Errorf("add cart item: %w", pkgerrors.ErrNotFound)
	}
	if existing := c.ItemFor(item.ProductID); existing != nil {
		return existing.AddQuantity(item.Quantity)
	}
	item.CartID = c.ID
	c.Items = append(c.Items, *item)
	return nil
}

// RemoveItem detaches the item from the collection; persistence deletes the
// orphaned row in the same transaction.
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cart item %s: %w", itemID, pkgerrors.ErrNotFound)
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) TotalPrice() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].TotalPrice()
	}
	return total
}

// TotalItemCount sums quantities, not lines: one item of quantity 5 counts 5.
func (c *Cart) TotalItemCount() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}
