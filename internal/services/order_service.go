package services

import (
	"encoding/json"
	"fmt"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

// OrderService handles business logic related to orders. The transactional
// work lives in the repository; this layer adds ownership checks and event
// publication.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// BuyNow purchases a single product immediately.
func (s *OrderService) BuyNow(userID, productID string, quantity int) (*models.Order, error) {
	order, err := s.orderRepo.BuyNow(userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	s.publishOrderCreated(order)
	return order, nil
}

// CheckoutCart purchases the user's whole cart.
func (s *OrderService) CheckoutCart(userID string) (*models.Order, error) {
	order, err := s.orderRepo.CheckoutCart(userID)
	if err != nil {
		return nil, err
	}
	s.publishOrderCreated(order)
	return order, nil
}

// publishOrderCreated emits an order.created event. Publication failures are
// logged, never surfaced: the order is already committed.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}
	if err := s.mqClient.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}

// GetOrders retrieves all orders of the user, newest first.
func (s *OrderService) GetOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order, restricted to its owner.
func (s *OrderService) GetOrderByID(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == nil || *order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrUnauthorized)
	}
	return order, nil
}

// UpdateOrderStatus moves an order to a new status.
func (s *OrderService) UpdateOrderStatus(orderID, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}
