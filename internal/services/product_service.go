package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts retrieves the page of products matching the filter.
func (s *ProductService) ListProducts(filter models.ProductFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct lists a new product for the given seller.
func (s *ProductService) CreateProduct(sellerID string, product *models.Product) error {
	product.SellerID = sellerID
	product.IsActive = true
	return s.repo.Create(product)
}

// UpdateProduct updates a product owned by the given seller.
func (s *ProductService) UpdateProduct(sellerID string, product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return fmt.Errorf("product %s: %w", product.ID, ErrUnauthorized)
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Brand = product.Brand
	existing.Condition = product.Condition
	existing.Price = product.Price
	existing.Stock = product.Stock
	existing.IsActive = product.IsActive
	existing.CategoryID = product.CategoryID
	*product = *existing

	return s.repo.Update(existing)
}

// DeleteProduct soft-deletes a product owned by the given seller.
func (s *ProductService) DeleteProduct(sellerID, productID string) error {
	existing, err := s.repo.GetByID(productID)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return fmt.Errorf("product %s: %w", productID, ErrUnauthorized)
	}
	return s.repo.Delete(productID)
}
