package repositories

import (
	"time"

	"pasar/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
	// Delete removes the user row for good. Dependent rows follow the
	// per-relation rules: the cart cascades, orders and reviews keep a null
	// user reference.
	Delete(id string) error
	// FindDeletionDue returns users whose deletion grace period elapsed
	// before now with the request flag still set.
	FindDeletionDue(now time.Time) ([]models.User, error)
}
