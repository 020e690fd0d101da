package repositories

import (
	"pasar/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	GetByProduct(productID string) ([]models.Review, error)
	Update(review *models.Review) error
	// Delete soft-deletes the review.
	Delete(id string) error
}
