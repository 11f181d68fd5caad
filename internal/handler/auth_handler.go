package handler

import (
	"go-inventory-pro/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an account and signs it in.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	response, err := h.authService.Register(&req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(response)
}

// Login handles user authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(response)
}

// Forgot always answers with the same message.
// POST /api/auth/forgot
func (h *AuthHandler) Forgot(c *fiber.Ctx) error {
	var req service.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	if err := h.authService.ForgotPassword(c.UserContext(), &req); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"msg": service.ForgotPasswordMessage})
}

// Reset sets a new password using an emailed token.
// POST /api/auth/reset
func (h *AuthHandler) Reset(c *fiber.Ctx) error {
	var req service.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	if err := h.authService.ResetPassword(c.UserContext(), &req); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"msg": "Password updated"})
}

// Me returns the caller's profile.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Me(userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(user)
}
