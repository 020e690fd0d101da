package handlers

import (
	"errors"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ok writes a success envelope.
func ok(c *fiber.Ctx, message string, data any) error {
	return c.JSON(models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// fail writes a failure envelope with the given status.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.APIResponse{
		Success: false,
		Message: message,
	})
}

// failFromError translates service/repository errors into the envelope with
// the matching HTTP status. Unexpected errors become an opaque 500.
func failFromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, repositories.ErrCartItemNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, repositories.ErrInsufficientStock),
		errors.Is(err, repositories.ErrCartEmpty),
		errors.Is(err, repositories.ErrDuplicate),
		errors.Is(err, services.ErrAccountLocked),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrDiscountNotActive),
		errors.Is(err, models.ErrPercentOutOfRange),
		errors.Is(err, models.ErrInvalidDiscount):
		return fail(c, fiber.StatusBadRequest, err.Error())

	default:
		return fail(c, fiber.StatusInternalServerError, "An unexpected error occurred")
	}
}

// failValidation flattens validator errors into one envelope message.
func failValidation(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return fail(c, fiber.StatusBadRequest,
			"Field '"+e.Field()+"' failed on the '"+e.Tag()+"' rule")
	}
	return fail(c, fiber.StatusBadRequest, "Validation failed")
}

// currentUserID returns the authenticated caller's ID from the locals set by
// the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// currentRole returns the authenticated caller's role.
func currentRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
