package handlers

import (
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/reviews", h.HandleListByProduct)
}

// RegisterProtectedRoutes registers the review routes that require a token.
func (h *ReviewHandler) RegisterProtectedRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Post("/", h.HandleCreate)
	reviewRoutes.Put("/:id", h.HandleUpdate)
	reviewRoutes.Delete("/:id", h.HandleDelete)
}

// HandleListByProduct returns a product's reviews, newest first.
func (h *ReviewHandler) HandleListByProduct(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return fail(c, fiber.StatusBadRequest, "product_id query parameter is required")
	}

	reviews, err := h.service.ListByProduct(productID)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "", reviews)
}

// CreateReviewRequest is the request body for posting a review.
type CreateReviewRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Rating    float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string  `json:"comment"`
}

// HandleCreate stores a new review for a product.
func (h *ReviewHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	review := models.Review{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.service.CreateReview(currentUserID(c), &review); err != nil {
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "Review created successfully",
		Data:    review,
	})
}

// UpdateReviewRequest is the request body for editing a review.
type UpdateReviewRequest struct {
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string  `json:"comment"`
}

// HandleUpdate edits the caller's own review.
func (h *ReviewHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	review, err := h.service.UpdateReview(currentUserID(c), c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Review updated successfully", review)
}

// HandleDelete removes the caller's own review.
func (h *ReviewHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteReview(currentUserID(c), c.Params("id")); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Review deleted successfully", nil)
}
