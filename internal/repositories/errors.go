package repositories

import "errors"

// Sentinel errors surfaced by the repositories. Callers match them with
// errors.Is; the handlers translate them to HTTP statuses.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrCartItemNotFound  = errors.New("item not in cart")
	ErrDuplicate         = errors.New("record already exists")
)
