package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

type ProductCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"uniqueIndex;not null;column:name" json:"name"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ProductCategory) TableName() string { return "product_category" }

func NewProductCategory(name string) *ProductCategory {
	return &ProductCategory{ID: uuid.New(), Name: name}
}

// Product prices are whole units of the minor currency denomination.
// StockQuantity is only ever mutated through RemoveStock/AddStock (or the
// repo's conditional decrement, which enforces the same floor durably).
type Product struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string           `gorm:"not null;column:name" json:"name"`
	Price       int              `gorm:"not null;column:price" json:"price"`
	Description string           `gorm:"column:description" json:"description"`
	ImageURL    string           `gorm:"column:image_url" json:"image_url"`
	CategoryID  uuid.UUID        `gorm:"type:uuid;index;column:category_id" json:"category_id"`
	Category    *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	StockQuantity int `gorm:"not null;column:stock_quantity" json:"stock_quantity"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

func NewProduct(name string, price int, description, imageURL string, categoryID uuid.UUID, stockQuantity int) *Product {
	return &Product{
		ID:            uuid.New(),
		Name:          name,
		Price:         price,
		Description:   description,
		ImageURL:      imageURL,
		CategoryID:    categoryID,
		StockQuantity: stockQuantity,
	}
}

// RemoveStock decrements stock and refuses to go below zero.
func (p *Product) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("remove stock of %q: %w", p.Name, pkgerrors.ErrInvalidQuantity)
	}
	rest := p.StockQuantity - quantity
	if rest < 0 {
		return fmt.Errorf("remove stock of %q (current %d, requested %d): %w",
			p.Name, p.StockQuantity, quantity, pkgerrors.ErrInsufficientStock)
	}
	p.StockQuantity = rest
	return nil
}

func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("add stock of %q: %w", p.Name, pkgerrors.ErrInvalidQuantity)
	}
	p.StockQuantity += quantity
	return nil
}
