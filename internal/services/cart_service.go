package services

import (
	"errors"
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/shopspring/decimal"
)

// CartService handles cart mutation. Stock is only checked here, never
// reserved: the authoritative check happens again at checkout inside the
// transaction.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart puts quantity units of a product into the user's cart, creating
// the cart on first use. If the product is already a line item the quantity
// is merged, re-checking the combined amount against current stock.
func (s *CartService) AddToCart(userID, productID string, quantity int) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if !product.Purchasable() {
		return fmt.Errorf("product %s is inactive: %w", productID, repositories.ErrNotFound)
	}
	if product.Stock < quantity {
		return fmt.Errorf("product %s: %w", product.Name, repositories.ErrInsufficientStock)
	}

	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}

	existing, err := s.cartRepo.GetItem(cart.ID, productID)
	switch {
	case err == nil:
		combined := existing.Quantity + quantity
		if product.Stock < combined {
			return fmt.Errorf("product %s: %w", product.Name, repositories.ErrInsufficientStock)
		}
		return s.cartRepo.UpdateItemQuantity(existing.ID, combined)
	case errors.Is(err, repositories.ErrCartItemNotFound):
		return s.cartRepo.AddItem(&models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		})
	default:
		return err
	}
}

// UpdateItem overwrites the quantity of an existing line item.
func (s *CartService) UpdateItem(userID, productID string, quantity int) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product %s: %w", productID, repositories.ErrCartItemNotFound)
		}
		return err
	}

	item, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return err
	}
	return s.cartRepo.UpdateItemQuantity(item.ID, quantity)
}

// RemoveItem deletes a line item. Removing a product that is not in the cart
// surfaces ErrCartItemNotFound, so a repeated removal is harmless.
func (s *CartService) RemoveItem(userID, productID string) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product %s: %w", productID, repositories.ErrCartItemNotFound)
		}
		return err
	}
	return s.cartRepo.RemoveItem(cart.ID, productID)
}

// ClearCart removes every line from the user's cart. A user without a cart
// has nothing to clear.
func (s *CartService) ClearCart(userID string) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.cartRepo.Clear(cart.ID)
}

// GetCart returns the user's cart as presentable lines with a total. A user
// without a cart gets an empty view.
func (s *CartService) GetCart(userID string) (*models.CartView, error) {
	view := &models.CartView{
		Items: []models.CartLine{},
		Total: decimal.Zero,
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return view, nil
		}
		return nil, err
	}

	for _, item := range cart.Items {
		if item.Product == nil {
			continue // product removed since it was added
		}
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, models.CartLine{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
			Subtotal:    subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}
