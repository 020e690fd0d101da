package services

import (
	"fmt"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// DiscountService handles discount management and assignment. Queries only
// ever surface discounts valid right now; whether apply operations re-check
// the active window is configurable (off preserves pre-scheduling).
type DiscountService struct {
	discountRepo    repositories.DiscountRepository
	productRepo     repositories.ProductRepository
	validateOnApply bool
}

// NewDiscountService creates a new DiscountService.
func NewDiscountService(discountRepo repositories.DiscountRepository, productRepo repositories.ProductRepository, validateOnApply bool) *DiscountService {
	return &DiscountService{
		discountRepo:    discountRepo,
		productRepo:     productRepo,
		validateOnApply: validateOnApply,
	}
}

// CreateDiscount stores a new discount definition.
func (s *DiscountService) CreateDiscount(discount *models.Discount) error {
	if discount.Kind == models.DiscountBuyXGetY && discount.RequiredQuantity <= 0 {
		return fmt.Errorf("required quantity must be positive: %w", models.ErrInvalidDiscount)
	}
	return s.discountRepo.Create(discount)
}

// UpdateDiscount saves changes to an existing discount.
func (s *DiscountService) UpdateDiscount(discount *models.Discount) error {
	if _, err := s.discountRepo.GetByID(discount.ID); err != nil {
		return err
	}
	return s.discountRepo.Update(discount)
}

// DeleteDiscount removes a discount and its links.
func (s *DiscountService) DeleteDiscount(id string) error {
	return s.discountRepo.Delete(id)
}

// GetActiveDiscounts returns every discount valid right now.
func (s *DiscountService) GetActiveDiscounts() ([]models.Discount, error) {
	return s.discountRepo.GetActive(time.Now())
}

// GetActiveDiscountsForProduct returns the product's currently valid
// discounts.
func (s *DiscountService) GetActiveDiscountsForProduct(productID string) ([]models.Discount, error) {
	return s.discountRepo.GetActiveForProduct(productID, time.Now())
}

// GetActiveDiscountsForUser returns the user's currently valid discounts.
func (s *DiscountService) GetActiveDiscountsForUser(userID string) ([]models.Discount, error) {
	return s.discountRepo.GetActiveForUser(userID, time.Now())
}

// GetProductDiscountLinks returns every discount linked to a product the
// caller sells, pre-scheduled and expired ones included.
func (s *DiscountService) GetProductDiscountLinks(callerID, productID string) ([]models.ProductDiscount, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != callerID {
		return nil, fmt.Errorf("product %s: %w", productID, ErrUnauthorized)
	}
	return s.discountRepo.GetProductDiscounts(productID)
}

// GetUserDiscountLinks returns every discount linked to the caller's own
// account, regardless of active window.
func (s *DiscountService) GetUserDiscountLinks(callerID, userID string) ([]models.UserDiscount, error) {
	if callerID != userID {
		return nil, fmt.Errorf("user %s: %w", userID, ErrUnauthorized)
	}
	return s.discountRepo.GetUserDiscounts(userID)
}

// ApplyToProduct links a discount to a product; only the owning seller may do
// this.
func (s *DiscountService) ApplyToProduct(callerID, productID, discountID string) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product.SellerID != callerID {
		return fmt.Errorf("product %s: %w", productID, ErrUnauthorized)
	}
	if err := s.checkApplicable(discountID); err != nil {
		return err
	}
	return s.discountRepo.ApplyToProduct(productID, discountID)
}

// ApplyToUser links a discount to a user's own account.
func (s *DiscountService) ApplyToUser(callerID, userID, discountID string) error {
	if callerID != userID {
		return fmt.Errorf("user %s: %w", userID, ErrUnauthorized)
	}
	if err := s.checkApplicable(discountID); err != nil {
		return err
	}
	return s.discountRepo.ApplyToUser(userID, discountID)
}

// RemoveFromProduct unlinks a discount from a product the caller sells.
func (s *DiscountService) RemoveFromProduct(callerID, productID, discountID string) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product.SellerID != callerID {
		return fmt.Errorf("product %s: %w", productID, ErrUnauthorized)
	}
	return s.discountRepo.RemoveFromProduct(productID, discountID)
}

// RemoveFromUser unlinks a discount from the caller's own account.
func (s *DiscountService) RemoveFromUser(callerID, userID, discountID string) error {
	if callerID != userID {
		return fmt.Errorf("user %s: %w", userID, ErrUnauthorized)
	}
	return s.discountRepo.RemoveFromUser(userID, discountID)
}

// checkApplicable enforces the optional apply-time window validation.
func (s *DiscountService) checkApplicable(discountID string) error {
	discount, err := s.discountRepo.GetByID(discountID)
	if err != nil {
		return err
	}
	if s.validateOnApply && !discount.ValidAt(time.Now()) {
		return fmt.Errorf("discount %s: %w", discountID, ErrDiscountNotActive)
	}
	return nil
}
