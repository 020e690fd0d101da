package repositories

import (
	"errors"
	"fmt"
	"time"

	"pasar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMDiscountRepository is a GORM implementation of DiscountRepository.
type GORMDiscountRepository struct {
	db *gorm.DB
}

// NewGORMDiscountRepository creates a new instance of GORMDiscountRepository.
func NewGORMDiscountRepository(db *gorm.DB) *GORMDiscountRepository {
	return &GORMDiscountRepository{
		db: db,
	}
}

// Create creates a new discount in the database.
func (r *GORMDiscountRepository) Create(discount *models.Discount) error {
	if discount.ID == "" {
		discount.ID = uuid.New().String()
	}
	if err := r.db.Create(discount).Error; err != nil {
		return fmt.Errorf("failed to create discount: %w", err)
	}
	return nil
}

// GetByID retrieves a single discount by its ID.
func (r *GORMDiscountRepository) GetByID(id string) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.First(&discount, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("discount with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get discount by ID %s: %w", id, err)
	}
	return &discount, nil
}

// Update saves all fields of an existing discount.
func (r *GORMDiscountRepository) Update(discount *models.Discount) error {
	res := r.db.Omit(clause.Associations).Save(discount)
	if res.Error != nil {
		return fmt.Errorf("failed to update discount: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("discount with ID %s: %w", discount.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a discount together with its product and user links.
func (r *GORMDiscountRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductDiscount{}, "discount_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete product links of discount %s: %w", id, err)
		}
		if err := tx.Delete(&models.UserDiscount{}, "discount_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete user links of discount %s: %w", id, err)
		}
		res := tx.Delete(&models.Discount{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete discount %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("discount with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// GetActive returns every discount valid at the given time.
func (r *GORMDiscountRepository) GetActive(now time.Time) ([]models.Discount, error) {
	var discounts []models.Discount
	err := r.db.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Find(&discounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active discounts: %w", err)
	}
	return discounts, nil
}

// GetActiveForProduct returns the discounts applied to the product that are
// valid at the given time.
func (r *GORMDiscountRepository) GetActiveForProduct(productID string, now time.Time) ([]models.Discount, error) {
	var discounts []models.Discount
	err := r.db.
		Joins("JOIN product_discounts pd ON pd.discount_id = discounts.id").
		Where("pd.product_id = ?", productID).
		Where("discounts.is_active = ? AND discounts.start_date <= ? AND discounts.end_date >= ?", true, now, now).
		Find(&discounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active discounts for product %s: %w", productID, err)
	}
	return discounts, nil
}

// GetActiveForUser returns the discounts granted to the user that are valid
// at the given time.
func (r *GORMDiscountRepository) GetActiveForUser(userID string, now time.Time) ([]models.Discount, error) {
	var discounts []models.Discount
	err := r.db.
		Joins("JOIN user_discounts ud ON ud.discount_id = discounts.id").
		Where("ud.user_id = ?", userID).
		Where("discounts.is_active = ? AND discounts.start_date <= ? AND discounts.end_date >= ?", true, now, now).
		Find(&discounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active discounts for user %s: %w", userID, err)
	}
	return discounts, nil
}

// ApplyToProduct links a discount to a product.
func (r *GORMDiscountRepository) ApplyToProduct(productID, discountID string) error {
	link := models.ProductDiscount{ProductID: productID, DiscountID: discountID}
	if err := r.db.Create(&link).Error; err != nil {
		return fmt.Errorf("failed to apply discount %s to product %s: %w", discountID, productID, err)
	}
	return nil
}

// ApplyToUser links a discount to a user.
func (r *GORMDiscountRepository) ApplyToUser(userID, discountID string) error {
	link := models.UserDiscount{UserID: userID, DiscountID: discountID}
	if err := r.db.Create(&link).Error; err != nil {
		return fmt.Errorf("failed to apply discount %s to user %s: %w", discountID, userID, err)
	}
	return nil
}

// RemoveFromProduct unlinks a discount from a product. Removing a link that
// does not exist is not an error.
func (r *GORMDiscountRepository) RemoveFromProduct(productID, discountID string) error {
	err := r.db.Delete(&models.ProductDiscount{}, "product_id = ? AND discount_id = ?", productID, discountID).Error
	if err != nil {
		return fmt.Errorf("failed to remove discount %s from product %s: %w", discountID, productID, err)
	}
	return nil
}

// RemoveFromUser unlinks a discount from a user. Removing a link that does
// not exist is not an error.
func (r *GORMDiscountRepository) RemoveFromUser(userID, discountID string) error {
	err := r.db.Delete(&models.UserDiscount{}, "user_id = ? AND discount_id = ?", userID, discountID).Error
	if err != nil {
		return fmt.Errorf("failed to remove discount %s from user %s: %w", discountID, userID, err)
	}
	return nil
}

// GetProductDiscounts returns every discount link of the product, valid or
// not, with the discount loaded.
func (r *GORMDiscountRepository) GetProductDiscounts(productID string) ([]models.ProductDiscount, error) {
	var links []models.ProductDiscount
	err := r.db.Preload("Discount").
		Where("product_id = ?", productID).
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get discounts for product %s: %w", productID, err)
	}
	return links, nil
}

// GetUserDiscounts returns every discount link of the user, valid or not,
// with the discount loaded.
func (r *GORMDiscountRepository) GetUserDiscounts(userID string) ([]models.UserDiscount, error) {
	var links []models.UserDiscount
	err := r.db.Preload("Discount").
		Where("user_id = ?", userID).
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get discounts for user %s: %w", userID, err)
	}
	return links, nil
}
