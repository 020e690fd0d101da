package repositories_test

import (
	"testing"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestDiscount(t *testing.T, db *gorm.DB, name string, start, end time.Time, active bool) *models.Discount {
	t.Helper()

	repo := repositories.NewGORMDiscountRepository(db)
	discount := &models.Discount{
		Name:       name,
		Kind:       models.DiscountPercentage,
		PercentOff: decimal.NewFromInt(10),
		StartDate:  start,
		EndDate:    end,
		IsActive:   active,
	}
	require.NoError(t, repo.Create(discount))
	return discount
}

func TestDiscountRepository_GetActive(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMDiscountRepository(db)

	now := time.Now()
	current := createTestDiscount(t, db, "Current", now.Add(-time.Hour), now.Add(time.Hour), true)
	createTestDiscount(t, db, "Expired", now.Add(-48*time.Hour), now.Add(-24*time.Hour), true)
	createTestDiscount(t, db, "Upcoming", now.Add(24*time.Hour), now.Add(48*time.Hour), true)
	createTestDiscount(t, db, "Disabled", now.Add(-time.Hour), now.Add(time.Hour), false)

	active, err := repo.GetActive(now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, current.ID, active[0].ID)
}

func TestDiscountRepository_ProductLinks(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMDiscountRepository(db)

	now := time.Now()
	seller := createTestUser(t, db, "seller@example.com")
	product := createTestProduct(t, db, seller.ID, "Laptop", 1200, 5)
	current := createTestDiscount(t, db, "Current", now.Add(-time.Hour), now.Add(time.Hour), true)
	upcoming := createTestDiscount(t, db, "Upcoming", now.Add(24*time.Hour), now.Add(48*time.Hour), true)

	// Linking an out-of-window discount is allowed; it just does not surface
	// until its start date.
	require.NoError(t, repo.ApplyToProduct(product.ID, current.ID))
	require.NoError(t, repo.ApplyToProduct(product.ID, upcoming.ID))

	active, err := repo.GetActiveForProduct(product.ID, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, current.ID, active[0].ID)

	links, err := repo.GetProductDiscounts(product.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	require.NoError(t, repo.RemoveFromProduct(product.ID, current.ID))
	active, err = repo.GetActiveForProduct(product.ID, now)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Removing an absent link is not an error.
	assert.NoError(t, repo.RemoveFromProduct(product.ID, current.ID))
}

func TestDiscountRepository_UserLinks(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMDiscountRepository(db)

	now := time.Now()
	user := createTestUser(t, db, "user@example.com")
	current := createTestDiscount(t, db, "Current", now.Add(-time.Hour), now.Add(time.Hour), true)
	upcoming := createTestDiscount(t, db, "Upcoming", now.Add(24*time.Hour), now.Add(48*time.Hour), true)

	require.NoError(t, repo.ApplyToUser(user.ID, current.ID))
	require.NoError(t, repo.ApplyToUser(user.ID, upcoming.ID))

	active, err := repo.GetActiveForUser(user.ID, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, current.ID, active[0].ID)

	// The raw link listing ignores the window.
	links, err := repo.GetUserDiscounts(user.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	require.NoError(t, repo.RemoveFromUser(user.ID, current.ID))
	active, err = repo.GetActiveForUser(user.ID, now)
	require.NoError(t, err)
	assert.Empty(t, active)
}
