package repositories_test

import (
	"fmt"
	"testing"

	"pasar/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database with foreign keys
// enabled and the full schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.ProductOrder{},
		&models.Review{},
		&models.Discount{},
		&models.ProductDiscount{},
		&models.UserDiscount{},
	))
	return db
}

// createTestUser inserts a user and returns it.
func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "hashed-password",
		Role:      models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestProduct inserts an active product and returns it.
func createTestProduct(t *testing.T, db *gorm.DB, sellerID, name string, price int64, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:       uuid.New().String(),
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
		IsActive: true,
		SellerID: sellerID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
