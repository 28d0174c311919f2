package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/deskflow/helpdesk/internal/api/dto"
	"github.com/deskflow/helpdesk/internal/service"
	apperrors "github.com/deskflow/helpdesk/pkg/util"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Email, role, and password are required")
	}
	if req.Email == "" || req.Role == "" || req.Password == "" {
		return apperrors.NewValidationError("Email, role, and password are required")
	}

	user, token, err := h.auth.Authenticate(c.Context(), req.Email, req.Role, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}
