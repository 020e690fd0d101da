package handlers

import (
	"log"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DiscountHandler handles HTTP requests for discounts.
type DiscountHandler struct {
	service  *services.DiscountService
	validate *validator.Validate
}

// NewDiscountHandler creates a new DiscountHandler.
func NewDiscountHandler(service *services.DiscountService) *DiscountHandler {
	return &DiscountHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public discount routes.
func (h *DiscountHandler) RegisterRoutes(router fiber.Router) {
	discountRoutes := router.Group("/discounts")
	discountRoutes.Get("/", h.HandleGetActive)
	discountRoutes.Get("/product/:productId", h.HandleGetForProduct)
}

// RegisterProtectedRoutes registers the discount routes that require a token.
func (h *DiscountHandler) RegisterProtectedRoutes(router fiber.Router) {
	discountRoutes := router.Group("/discounts")
	discountRoutes.Post("/", h.HandleCreate)
	discountRoutes.Put("/:id", h.HandleUpdate)
	discountRoutes.Delete("/:id", h.HandleDelete)
	discountRoutes.Get("/user/:userId", h.HandleGetForUser)
	discountRoutes.Get("/product/:productId/links", h.HandleGetProductLinks)
	discountRoutes.Get("/user/:userId/links", h.HandleGetUserLinks)
	discountRoutes.Post("/apply-to-product", h.HandleApplyToProduct)
	discountRoutes.Post("/apply-to-user", h.HandleApplyToUser)
	discountRoutes.Delete("/product/:productId/:discountId", h.HandleRemoveFromProduct)
	discountRoutes.Delete("/user/:userId/:discountId", h.HandleRemoveFromUser)
}

// HandleGetActive returns every discount valid right now.
func (h *DiscountHandler) HandleGetActive(c *fiber.Ctx) error {
	discounts, err := h.service.GetActiveDiscounts()
	if err != nil {
		log.Printf("Error fetching discounts: %v", err)
		return failFromError(c, err)
	}
	return ok(c, "", discounts)
}

// HandleGetForProduct returns a product's currently valid discounts.
func (h *DiscountHandler) HandleGetForProduct(c *fiber.Ctx) error {
	discounts, err := h.service.GetActiveDiscountsForProduct(c.Params("productId"))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "", discounts)
}

// HandleGetForUser returns a user's currently valid discounts.
func (h *DiscountHandler) HandleGetForUser(c *fiber.Ctx) error {
	discounts, err := h.service.GetActiveDiscountsForUser(c.Params("userId"))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "", discounts)
}

// HandleGetProductLinks returns every discount link on a product the caller
// sells, active window ignored. Sellers use this to audit scheduled discounts.
func (h *DiscountHandler) HandleGetProductLinks(c *fiber.Ctx) error {
	links, err := h.service.GetProductDiscountLinks(currentUserID(c), c.Params("productId"))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "", links)
}

// HandleGetUserLinks returns every discount link on the caller's own account,
// active window ignored.
func (h *DiscountHandler) HandleGetUserLinks(c *fiber.Ctx) error {
	links, err := h.service.GetUserDiscountLinks(currentUserID(c), c.Params("userId"))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "", links)
}

// HandleCreate stores a new discount definition.
func (h *DiscountHandler) HandleCreate(c *fiber.Ctx) error {
	var discount models.Discount
	if err := c.BodyParser(&discount); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(discount); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.CreateDiscount(&discount); err != nil {
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "Discount created successfully",
		Data:    discount,
	})
}

// HandleUpdate saves changes to a discount.
func (h *DiscountHandler) HandleUpdate(c *fiber.Ctx) error {
	var discount models.Discount
	if err := c.BodyParser(&discount); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	discount.ID = c.Params("id")
	if err := h.validate.Struct(discount); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.UpdateDiscount(&discount); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Discount updated successfully", discount)
}

// HandleDelete removes a discount.
func (h *DiscountHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteDiscount(c.Params("id")); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Discount deleted successfully", nil)
}

// ApplyToProductRequest is the request body for applying a discount to a
// product.
type ApplyToProductRequest struct {
	ProductID  string `json:"product_id" validate:"required,uuid"`
	DiscountID string `json:"discount_id" validate:"required,uuid"`
}

// HandleApplyToProduct links a discount to a product the caller sells.
func (h *DiscountHandler) HandleApplyToProduct(c *fiber.Ctx) error {
	var req ApplyToProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.ApplyToProduct(currentUserID(c), req.ProductID, req.DiscountID); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Discount applied to the product successfully", nil)
}

// ApplyToUserRequest is the request body for applying a discount to a user.
type ApplyToUserRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid"`
	DiscountID string `json:"discount_id" validate:"required,uuid"`
}

// HandleApplyToUser links a discount to the caller's own account.
func (h *DiscountHandler) HandleApplyToUser(c *fiber.Ctx) error {
	var req ApplyToUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.ApplyToUser(currentUserID(c), req.UserID, req.DiscountID); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Discount applied to the user successfully", nil)
}

// HandleRemoveFromProduct unlinks a discount from a product the caller sells.
func (h *DiscountHandler) HandleRemoveFromProduct(c *fiber.Ctx) error {
	if err := h.service.RemoveFromProduct(currentUserID(c), c.Params("productId"), c.Params("discountId")); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Discount removed from the product successfully", nil)
}

// HandleRemoveFromUser unlinks a discount from the caller's own account.
func (h *DiscountHandler) HandleRemoveFromUser(c *fiber.Ctx) error {
	if err := h.service.RemoveFromUser(currentUserID(c), c.Params("userId"), c.Params("discountId")); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Discount removed from the user successfully", nil)
}
