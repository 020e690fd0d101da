package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product listed for sale.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Brand       string          `json:"brand" validate:"omitempty,max=100"`
	Condition   string          `json:"condition" validate:"omitempty,max=50"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Stock       int             `json:"stock" validate:"gte=0"`
	IsActive    bool            `json:"is_active"`

	SellerID string `json:"seller_id" gorm:"index;type:varchar(36)"`
	Seller   *User  `json:"seller,omitempty"`

	CategoryID *string   `json:"category_id" gorm:"index;type:varchar(36)" validate:"omitempty,uuid"` // nullable: uncategorized listings are valid
	Category   *Category `json:"category,omitempty"`

	Reviews []Review `json:"reviews,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"` // soft delete, hidden from listings
}

// Purchasable reports whether the product can be added to a cart or bought.
// Soft-deleted products never reach this check: GORM excludes them from reads.
func (p *Product) Purchasable() bool {
	return p.IsActive
}

// Category groups products for filtering.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
}

// ProductFilter carries the optional listing filters.
type ProductFilter struct {
	Name       string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	CategoryID string
	Page       int
	PageSize   int
}
