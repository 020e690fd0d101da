package repositories

import (
	"pasar/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns the page of active, in-stock products matching the filter
	// together with the total match count. Soft-deleted products never appear.
	List(filter models.ProductFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Delete soft-deletes the product; it stays referenced by past orders.
	Delete(id string) error
}
