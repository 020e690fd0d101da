package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses as they move through fulfilment.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a committed purchase. An order and its line items are
// created inside one transaction and are immutable afterwards, except for the
// status field.
type Order struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      *string         `json:"user_id" gorm:"index;type:varchar(36)"` // nullable: kept when the user is deleted
	Status      string          `json:"status" gorm:"type:varchar(20)"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2)"`
	OrderDate   time.Time       `json:"order_date"`

	Items []ProductOrder `json:"items" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductOrder is a single line item of an order. UnitPrice snapshots the
// product price at order time.
type ProductOrder struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string          `json:"order_id" gorm:"index:idx_order_product;type:varchar(36)"`
	ProductID *string         `json:"product_id" gorm:"index:idx_order_product;type:varchar(36)"` // nullable: kept when the product is deleted
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2)"`

	Product *Product `json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
