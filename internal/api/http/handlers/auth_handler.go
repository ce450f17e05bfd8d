package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-br/chamados-api/internal/api/dto"
	"github.com/helpdesk-br/chamados-api/internal/service"
	apperrors "github.com/helpdesk-br/chamados-api/pkg/util/errorutil"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("corpo da requisição inválido")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Sector == "" {
		return apperrors.NewValidationError("name, email, password e sector são obrigatórios")
	}

	_, token, _, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password, req.Sector)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(dto.TokenResponse{Token: token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("corpo da requisição inválido")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email e password são obrigatórios")
	}

	_, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(dto.TokenResponse{Token: token})
}
