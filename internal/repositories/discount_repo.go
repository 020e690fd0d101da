package repositories

import (
	"time"

	"pasar/internal/models"
)

// DiscountRepository defines the interface for discount data access. Every
// query returning discounts to callers is gated on the active-date window;
// the apply operations are not (pre-scheduling a discount is allowed, see
// DiscountService for the optional re-validation).
type DiscountRepository interface {
	Create(discount *models.Discount) error
	GetByID(id string) (*models.Discount, error)
	Update(discount *models.Discount) error
	Delete(id string) error

	GetActive(now time.Time) ([]models.Discount, error)
	GetActiveForProduct(productID string, now time.Time) ([]models.Discount, error)
	GetActiveForUser(userID string, now time.Time) ([]models.Discount, error)

	ApplyToProduct(productID, discountID string) error
	ApplyToUser(userID, discountID string) error
	RemoveFromProduct(productID, discountID string) error
	RemoveFromUser(userID, discountID string) error

	GetProductDiscounts(productID string) ([]models.ProductDiscount, error)
	GetUserDiscounts(userID string) ([]models.UserDiscount, error)
}
