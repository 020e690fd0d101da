package services_test

import (
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "p1", Name: "Laptop", Price: decimal.NewFromInt(1200), Stock: 10},
		{ID: "p2", Name: "Mouse", Price: decimal.NewFromInt(25), Stock: 50},
	}
	filter := models.ProductFilter{Name: "a"}
	mockRepo.On("List", filter).Return(expected, int64(2), nil).Once()

	products, total, err := service.ListProducts(filter)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{Name: "Laptop", Price: decimal.NewFromInt(1200), Stock: 10}
	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.SellerID == "seller-1" && p.IsActive
	})).Return(nil).Once()

	err := service.CreateProduct("seller-1", product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_OwnershipEnforced(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "p1", Name: "Laptop", SellerID: "seller-1", IsActive: true}
	mockRepo.On("GetByID", "p1").Return(existing, nil).Once()

	err := service.UpdateProduct("someone-else", &models.Product{ID: "p1", Name: "Stolen"})

	assert.ErrorIs(t, err, services.ErrUnauthorized)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "p1", SellerID: "seller-1"}
	mockRepo.On("GetByID", "p1").Return(existing, nil).Twice()

	err := service.DeleteProduct("someone-else", "p1")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	mockRepo.On("Delete", "p1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct("seller-1", "p1"))
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()

	_, err := service.GetProductByID("missing")

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
