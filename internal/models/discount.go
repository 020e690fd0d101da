package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Discount kinds. A discount row is a tagged variant: the kind selects which
// of the kind-specific columns apply.
const (
	DiscountPercentage  = "percentage"
	DiscountFixedAmount = "fixed_amount"
	DiscountBuyXGetY    = "buy_x_get_y"
)

var (
	// ErrPercentOutOfRange is returned for a percentage discount whose
	// PercentOff falls outside [0, 100].
	ErrPercentOutOfRange = errors.New("percent off must be between 0 and 100")
	// ErrInvalidDiscount is returned when a discount's kind-specific fields
	// are unusable, e.g. an unknown kind or a non-positive required quantity.
	ErrInvalidDiscount = errors.New("invalid discount definition")
)

// Discount is a monetary reduction valid inside a date window. It applies to
// products and users through the ProductDiscount / UserDiscount join tables.
type Discount struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Kind        string `json:"kind" gorm:"type:varchar(20);index" validate:"required,oneof=percentage fixed_amount buy_x_get_y"`

	// Kind-specific fields; unused ones stay zero.
	PercentOff       decimal.Decimal `json:"percent_off" gorm:"type:decimal(5,2)"`
	AmountOff        decimal.Decimal `json:"amount_off" gorm:"type:decimal(12,2)"`
	RequiredQuantity int             `json:"required_quantity"`
	FreeQuantity     int             `json:"free_quantity"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductDiscount links a discount to a product.
type ProductDiscount struct {
	ProductID  string `json:"product_id" gorm:"primaryKey;type:varchar(36)"`
	DiscountID string `json:"discount_id" gorm:"primaryKey;type:varchar(36)"`

	Discount *Discount `json:"discount,omitempty"`
}

// UserDiscount links a discount to a user.
type UserDiscount struct {
	UserID     string `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	DiscountID string `json:"discount_id" gorm:"primaryKey;type:varchar(36)"`

	Discount *Discount `json:"discount,omitempty"`
}

// ValidAt reports whether the discount is active and t falls inside its date
// window. Every query surfacing discounts to callers is gated on this.
func (d *Discount) ValidAt(t time.Time) bool {
	return d.IsActive && !t.Before(d.StartDate) && !t.After(d.EndDate)
}

// CalculateDiscount computes the monetary reduction for the given price and
// quantity. The price argument is the original price for percentage and
// fixed-amount discounts, and the unit price for buy-X-get-Y.
func (d *Discount) CalculateDiscount(price decimal.Decimal, quantity int) (decimal.Decimal, error) {
	switch d.Kind {
	case DiscountPercentage:
		if d.PercentOff.IsNegative() || d.PercentOff.GreaterThan(decimal.NewFromInt(100)) {
			return decimal.Zero, ErrPercentOutOfRange
		}
		return price.Mul(d.PercentOff).Div(decimal.NewFromInt(100)), nil

	case DiscountFixedAmount:
		// Clamp to the price so the discounted price never goes negative.
		if d.AmountOff.GreaterThan(price) {
			return price, nil
		}
		return d.AmountOff, nil

	case DiscountBuyXGetY:
		if d.RequiredQuantity <= 0 {
			return decimal.Zero, ErrInvalidDiscount
		}
		if quantity < d.RequiredQuantity {
			return decimal.Zero, nil
		}
		freeItems := (quantity / d.RequiredQuantity) * d.FreeQuantity
		return price.Mul(decimal.NewFromInt(int64(freeItems))), nil

	default:
		return decimal.Zero, ErrInvalidDiscount
	}
}

// FreeItems returns how many free units a buy-X-get-Y discount grants for the
// purchased quantity. Zero for other kinds.
func (d *Discount) FreeItems(quantity int) int {
	if d.Kind != DiscountBuyXGetY || d.RequiredQuantity <= 0 {
		return 0
	}
	return (quantity / d.RequiredQuantity) * d.FreeQuantity
}
