package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds the items a user intends to buy. Each user has at most one cart,
// created lazily on the first add.
type Cart struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`

	Items []CartItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem is a single product line inside a cart. A (cart, product) pair is
// unique; adding the same product again raises the quantity instead.
type CartItem struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string `json:"cart_id" gorm:"uniqueIndex:idx_cart_product;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"uniqueIndex:idx_cart_product;type:varchar(36)"`
	Quantity  int    `json:"quantity" validate:"gt=0"`

	Product *Product `json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartView is the cart as returned to callers: line items with price
// snapshots and a computed total. No stock is reserved by a cart.
type CartView struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// CartLine is one presentable cart row.
type CartLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
