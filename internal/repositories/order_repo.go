package repositories

import (
	"pasar/internal/models"
)

// OrderRepository defines the interface for order data access, including the
// transactional purchase paths.
type OrderRepository interface {
	// BuyNow purchases a single product immediately. Order, line item and
	// stock decrement commit atomically or not at all.
	BuyNow(userID, productID string, quantity int) (*models.Order, error)
	// CheckoutCart purchases every line item in the user's cart and clears
	// it. The first stock violation aborts the whole operation; there is no
	// partial checkout.
	CheckoutCart(userID string) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
}
