package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-br/chamados-api/internal/api/dto"
	"github.com/helpdesk-br/chamados-api/internal/domain"
	"github.com/helpdesk-br/chamados-api/internal/service"
	apperrors "github.com/helpdesk-br/chamados-api/pkg/util/errorutil"
)

// CallsHandler exposes call submission and listing endpoints for both
// variants.
type CallsHandler struct {
	calls *service.CallService
}

// NewCallsHandler constructs handler.
func NewCallsHandler(callService *service.CallService) *CallsHandler {
	return &CallsHandler{calls: callService}
}

// Open returns a handler for POST /api/calls/<variant>.
func (h *CallsHandler) Open(variant domain.CallVariant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.OpenCallRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("corpo da requisição inválido")
		}
		if req.Name == "" || req.Email == "" || req.Sector == "" || req.Description == "" {
			return apperrors.NewValidationError("name, email, sector e description são obrigatórios")
		}

		_, token, _, err := h.calls.OpenCall(c.Context(), variant, req.Name, req.Email, req.Sector, req.Description)
		if err != nil {
			return err
		}

		return c.Status(http.StatusCreated).JSON(dto.TokenResponse{Token: token})
	}
}

// List returns a handler for GET /api/calls/<variant>.
func (h *CallsHandler) List(variant domain.CallVariant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		calls, err := h.calls.ListCalls(c.Context(), variant)
		if err != nil {
			return err
		}
		return c.Status(http.StatusOK).JSON(dto.NewCallListResponse(calls))
	}
}
