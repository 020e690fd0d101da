package handlers

import (
	"log"

	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes. All of them require a token.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", h.HandleUpdateStatus)
}

// HandleGetOrders returns the caller's orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrders(currentUserID(c))
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		return failFromError(c, err)
	}
	return ok(c, "", orders)
}

// HandleGetOrderByID returns one of the caller's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(currentUserID(c), c.Params("id"))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "", order)
}

// UpdateStatusRequest is the request body for an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus moves an order to a new status.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Status == "" {
		return fail(c, fiber.StatusBadRequest, "Status is required")
	}

	if err := h.service.UpdateOrderStatus(c.Params("id"), req.Status); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Order status updated successfully", nil)
}
