package services_test

import (
	"testing"
	"time"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDiscountService_CreateDiscount_BuyXGetYValidation(t *testing.T) {
	mockDiscountRepo := new(MockDiscountRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewDiscountService(mockDiscountRepo, mockProductRepo, false)

	bad := &models.Discount{Kind: models.DiscountBuyXGetY, RequiredQuantity: 0, FreeQuantity: 1}
	err := service.CreateDiscount(bad)
	assert.ErrorIs(t, err, models.ErrInvalidDiscount)
	mockDiscountRepo.AssertNotCalled(t, "Create", mock.Anything)

	good := &models.Discount{Kind: models.DiscountBuyXGetY, RequiredQuantity: 3, FreeQuantity: 1}
	mockDiscountRepo.On("Create", good).Return(nil).Once()
	assert.NoError(t, service.CreateDiscount(good))
	mockDiscountRepo.AssertExpectations(t)
}

func TestDiscountService_ApplyToProduct_SellerOnly(t *testing.T) {
	mockDiscountRepo := new(MockDiscountRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewDiscountService(mockDiscountRepo, mockProductRepo, false)

	product := &models.Product{ID: "p1", SellerID: "seller-1"}
	mockProductRepo.On("GetByID", "p1").Return(product, nil).Twice()

	err := service.ApplyToProduct("someone-else", "p1", "d1")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	mockDiscountRepo.AssertNotCalled(t, "ApplyToProduct", mock.Anything, mock.Anything)

	discount := &models.Discount{ID: "d1"}
	mockDiscountRepo.On("GetByID", "d1").Return(discount, nil).Once()
	mockDiscountRepo.On("ApplyToProduct", "p1", "d1").Return(nil).Once()

	assert.NoError(t, service.ApplyToProduct("seller-1", "p1", "d1"))
	mockDiscountRepo.AssertExpectations(t)
}

func TestDiscountService_ApplyToUser_SelfOnly(t *testing.T) {
	mockDiscountRepo := new(MockDiscountRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewDiscountService(mockDiscountRepo, mockProductRepo, false)

	err := service.ApplyToUser("u1", "u2", "d1")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	discount := &models.Discount{ID: "d1"}
	mockDiscountRepo.On("GetByID", "d1").Return(discount, nil).Once()
	mockDiscountRepo.On("ApplyToUser", "u1", "d1").Return(nil).Once()

	assert.NoError(t, service.ApplyToUser("u1", "u1", "d1"))
	mockDiscountRepo.AssertExpectations(t)
}

func TestDiscountService_GetProductDiscountLinks_SellerOnly(t *testing.T) {
	mockDiscountRepo := new(MockDiscountRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewDiscountService(mockDiscountRepo, mockProductRepo, false)

	product := &models.Product{ID: "p1", SellerID: "seller-1"}
	mockProductRepo.On("GetByID", "p1").Return(product, nil).Twice()

	_, err := service.GetProductDiscountLinks("someone-else", "p1")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	mockDiscountRepo.AssertNotCalled(t, "GetProductDiscounts", mock.Anything)

	links := []models.ProductDiscount{{ProductID: "p1", DiscountID: "d1"}}
	mockDiscountRepo.On("GetProductDiscounts", "p1").Return(links, nil).Once()

	got, err := service.GetProductDiscountLinks("seller-1", "p1")
	assert.NoError(t, err)
	assert.Equal(t, links, got)
	mockDiscountRepo.AssertExpectations(t)
}

func TestDiscountService_GetUserDiscountLinks_SelfOnly(t *testing.T) {
	mockDiscountRepo := new(MockDiscountRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewDiscountService(mockDiscountRepo, mockProductRepo, false)

	_, err := service.GetUserDiscountLinks("u1", "u2")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	mockDiscountRepo.AssertNotCalled(t, "GetUserDiscounts", mock.Anything)

	links := []models.UserDiscount{{UserID: "u1", DiscountID: "d1"}}
	mockDiscountRepo.On("GetUserDiscounts", "u1").Return(links, nil).Once()

	got, err := service.GetUserDiscountLinks("u1", "u1")
	assert.NoError(t, err)
	assert.Equal(t, links, got)
	mockDiscountRepo.AssertExpectations(t)
}

func TestDiscountService_ApplyValidation_Disabled(t *testing.T) {
	mockDiscountRepo := new(MockDiscountRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewDiscountService(mockDiscountRepo, mockProductRepo, false)

	// An upcoming discount can be linked ahead of its window when apply-time
	// validation is off.
	upcoming := &models.Discount{
		ID:        "d1",
		IsActive:  true,
		StartDate: time.Now().Add(24 * time.Hour),
		EndDate:   time.Now().Add(48 * time.Hour),
	}
	product := &models.Product{ID: "p1", SellerID: "seller-1"}

	mockProductRepo.On("GetByID", "p1").Return(product, nil).Once()
	mockDiscountRepo.On("GetByID", "d1").Return(upcoming, nil).Once()
	mockDiscountRepo.On("ApplyToProduct", "p1", "d1").Return(nil).Once()

	assert.NoError(t, service.ApplyToProduct("seller-1", "p1", "d1"))
	mockDiscountRepo.AssertExpectations(t)
}

func TestDiscountService_ApplyValidation_Enabled(t *testing.T) {
	mockDiscountRepo := new(MockDiscountRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewDiscountService(mockDiscountRepo, mockProductRepo, true)

	upcoming := &models.Discount{
		ID:        "d1",
		IsActive:  true,
		StartDate: time.Now().Add(24 * time.Hour),
		EndDate:   time.Now().Add(48 * time.Hour),
	}
	product := &models.Product{ID: "p1", SellerID: "seller-1"}

	mockProductRepo.On("GetByID", "p1").Return(product, nil).Once()
	mockDiscountRepo.On("GetByID", "d1").Return(upcoming, nil).Once()

	err := service.ApplyToProduct("seller-1", "p1", "d1")

	assert.ErrorIs(t, err, services.ErrDiscountNotActive)
	mockDiscountRepo.AssertNotCalled(t, "ApplyToProduct", mock.Anything, mock.Anything)
}
