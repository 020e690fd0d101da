package handlers

import (
	"log"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuthHandler handles HTTP requests for accounts and authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the account routes that require a token.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Get("/me", h.HandleMe)
	authRoutes.Post("/change-password", h.HandleChangePassword)
	authRoutes.Put("/profile", h.HandleUpdateProfile)
	authRoutes.Post("/make-seller", h.HandleMakeSeller)
	authRoutes.Delete("/account", h.HandleRequestDeletion)
	authRoutes.Post("/deactivate", h.HandleDeactivate)
}

// RegisterRequest is the request body for registration.
type RegisterRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=2,max=100"`
	LastName        string `json:"last_name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user := models.User{
		ID:        uuid.New().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	token, user, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)
		return failFromError(c, err)
	}
	return ok(c, "User logged-in successfully", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// HandleMe returns the authenticated user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user, err := h.authService.GetUser(currentUserID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "User found", user)
}

// ChangePasswordRequest is the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// HandleChangePassword changes the caller's password.
func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.authService.ChangePassword(currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Password changed successfully", nil)
}

// UpdateProfileRequest is the request body for a profile update.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// HandleUpdateProfile updates the caller's name and email.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user, err := h.authService.UpdateProfile(currentUserID(c), req.FirstName, req.LastName, req.Email)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "User updated successfully", user)
}

// HandleMakeSeller grants the caller the seller role.
func (h *AuthHandler) HandleMakeSeller(c *fiber.Ctx) error {
	user, err := h.authService.MakeSeller(currentUserID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, "User is now a seller", user)
}

// DeleteAccountRequest is the request body for an account deletion request.
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

// HandleRequestDeletion schedules the caller's account for deletion after
// the grace period. Logging in during the window cancels it.
func (h *AuthHandler) HandleRequestDeletion(c *fiber.Ctx) error {
	var req DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.authService.RequestDeletion(currentUserID(c), req.Password); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Account scheduled for deletion", nil)
}

// HandleDeactivate locks the caller's account indefinitely.
func (h *AuthHandler) HandleDeactivate(c *fiber.Ctx) error {
	if err := h.authService.DeactivateAccount(currentUserID(c)); err != nil {
		return failFromError(c, err)
	}
	return ok(c, "Account deactivated", nil)
}
