package repositories

import (
	"pasar/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetOrCreate returns the user's cart, creating it on first use.
	GetOrCreate(userID string) (*models.Cart, error)
	// GetByUser returns the user's cart with items and their products
	// loaded, or ErrNotFound if the user has no cart yet.
	GetByUser(userID string) (*models.Cart, error)
	GetItem(cartID, productID string) (*models.CartItem, error)
	AddItem(item *models.CartItem) error
	UpdateItemQuantity(itemID string, quantity int) error
	// RemoveItem deletes the (cart, product) line; ErrCartItemNotFound if
	// the pair does not exist, which makes repeated removals safe to call.
	RemoveItem(cartID, productID string) error
	Clear(cartID string) error
}
