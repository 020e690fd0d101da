package handlers

import (
	"log"

	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart and the purchase
// entry points.
type CartHandler struct {
	cartService  *services.CartService
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, orderService *services.OrderService) *CartHandler {
	return &CartHandler{
		cartService:  cartService,
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the cart routes. All of them require a token.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/:productId", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/checkout", h.HandleCheckout)
	cartRoutes.Post("/buy-now", h.HandleBuyNow)
}

// HandleGetCart returns the caller's cart with a computed total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	view, err := h.cartService.GetCart(currentUserID(c))
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		return failFromError(c, err)
	}
	return ok(c, "", view)
}

// AddItemRequest is the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem adds a product to the caller's cart and returns the updated
// cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	userID := currentUserID(c)
	if err := h.cartService.AddToCart(userID, req.ProductID, req.Quantity); err != nil {
		return failFromError(c, err)
	}

	view, err := h.cartService.GetCart(userID)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Item added to cart successfully", view)
}

// UpdateItemRequest is the request body for overwriting a line quantity.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// HandleUpdateItem overwrites the quantity of a cart line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.cartService.UpdateItem(currentUserID(c), c.Params("productId"), req.Quantity); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Cart item updated successfully", nil)
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.cartService.RemoveItem(currentUserID(c), c.Params("productId")); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Item removed from cart successfully", nil)
}

// HandleClearCart empties the caller's cart in one go.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.cartService.ClearCart(currentUserID(c)); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Cart cleared successfully", nil)
}

// HandleCheckout purchases the caller's whole cart atomically.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	order, err := h.orderService.CheckoutCart(currentUserID(c))
	if err != nil {
		log.Printf("Checkout failed: %v", err)
		return failFromError(c, err)
	}
	return ok(c, "Order placed successfully", order)
}

// BuyNowRequest is the request body for an immediate single-product purchase.
type BuyNowRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleBuyNow purchases a single product immediately, bypassing the cart.
func (h *CartHandler) HandleBuyNow(c *fiber.Ctx) error {
	var req BuyNowRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	order, err := h.orderService.BuyNow(currentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Buy-now failed: %v", err)
		return failFromError(c, err)
	}
	return ok(c, "Order placed successfully", order)
}
