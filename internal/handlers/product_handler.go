package handlers

import (
	"log"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGetByID)
}

// RegisterProtectedRoutes registers the seller-facing product routes.
func (h *ProductHandler) RegisterProtectedRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns the page of active, in-stock products matching the
// optional query filters.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	filter := models.ProductFilter{
		Name:       c.Query("name"),
		CategoryID: c.Query("category_id"),
		Page:       c.QueryInt("page", 1),
		PageSize:   c.QueryInt("page_size", 10),
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid min_price")
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid max_price")
		}
		filter.MaxPrice = &max
	}

	products, total, err := h.service.ListProducts(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return failFromError(c, err)
	}
	return ok(c, "", fiber.Map{
		"products":  products,
		"total":     total,
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})
}

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "", product)
}

// HandleCreate lists a new product for the calling seller.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	if role := currentRole(c); role != models.RoleSeller && role != models.RoleAdmin {
		return fail(c, fiber.StatusUnauthorized, "Only sellers can list products")
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(product); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.CreateProduct(currentUserID(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// HandleUpdate updates a product the caller sells.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.UpdateProduct(currentUserID(c), &product); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Product updated successfully", product)
}

// HandleDelete soft-deletes a product the caller sells.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(currentUserID(c), c.Params("id")); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Product deleted successfully", nil)
}
