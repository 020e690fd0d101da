package repositories

import (
	"errors"
	"fmt"
	"time"

	"pasar/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository. The
// purchase paths run inside database transactions: returning an error from
// the transaction closure rolls everything back, so stock decrements are
// never observed without their committed order.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// decrementStock subtracts quantity from the product's stock with a guard
// against going negative. Zero rows affected means the freshness check lost a
// race since the read, and the transaction must abort.
func decrementStock(tx *gorm.DB, productID string, quantity int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", productID, ErrInsufficientStock)
	}
	return nil
}

// BuyNow purchases a single product in one transaction.
func (r *GORMOrderRepository) BuyNow(userID, productID string, quantity int) (*models.Order, error) {
	var order *models.Order

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.First(&product, "id = ? AND is_active = ?", productID, true).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s not found or inactive: %w", productID, ErrNotFound)
			}
			return fmt.Errorf("failed to load product %s: %w", productID, err)
		}

		if product.Stock < quantity {
			return fmt.Errorf("not enough stock for product %s: %w", product.Name, ErrInsufficientStock)
		}

		order = &models.Order{
			ID:          uuid.New().String(),
			UserID:      &userID,
			Status:      models.OrderStatusPending,
			TotalAmount: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
			OrderDate:   time.Now(),
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		line := models.ProductOrder{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: &product.ID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		}
		if err := tx.Create(&line).Error; err != nil {
			return fmt.Errorf("failed to create order line: %w", err)
		}
		order.Items = append(order.Items, line)

		return decrementStock(tx, product.ID, quantity)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CheckoutCart purchases every item in the user's cart in one transaction and
// clears the cart on success.
func (r *GORMOrderRepository) CheckoutCart(userID string) (*models.Order, error) {
	var order *models.Order

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items").Preload("Items.Product").
			First(&cart, "user_id = ?", userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %s: %w", userID, ErrCartEmpty)
			}
			return fmt.Errorf("failed to load cart for user %s: %w", userID, err)
		}
		if len(cart.Items) == 0 {
			return fmt.Errorf("user %s: %w", userID, ErrCartEmpty)
		}

		// Validate every line before writing anything; the first violation
		// aborts the whole checkout.
		total := decimal.Zero
		for _, item := range cart.Items {
			if item.Product == nil || !item.Product.Purchasable() {
				return fmt.Errorf("product %s no longer available: %w", item.ProductID, ErrNotFound)
			}
			if item.Product.Stock < item.Quantity {
				return fmt.Errorf("not enough stock for product %s: %w", item.Product.Name, ErrInsufficientStock)
			}
			total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		order = &models.Order{
			ID:          uuid.New().String(),
			UserID:      &userID,
			Status:      models.OrderStatusPending,
			TotalAmount: total,
			OrderDate:   time.Now(),
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range cart.Items {
			line := models.ProductOrder{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: &item.Product.ID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return fmt.Errorf("failed to create order line: %w", err)
			}
			order.Items = append(order.Items, line)

			if err := decrementStock(tx, item.Product.ID, item.Quantity); err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", cart.ID).Error; err != nil {
			return fmt.Errorf("failed to clear cart %s: %w", cart.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID retrieves a single order with its line items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUser retrieves all orders placed by the user, newest first.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// UpdateStatus updates the status of an existing order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order %s status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
