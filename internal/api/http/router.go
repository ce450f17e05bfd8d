package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-br/chamados-api/internal/api/http/handlers"
	"github.com/helpdesk-br/chamados-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Calls  *handlers.CallsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Welcome)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	callsGroup := api.Group("/calls")
	callsGroup.Post("/ti", cfg.Calls.Open(domain.CallVariantTI))
	callsGroup.Get("/ti", cfg.Calls.List(domain.CallVariantTI))
	callsGroup.Post("/manutencao", cfg.Calls.Open(domain.CallVariantManutencao))
	callsGroup.Get("/manutencao", cfg.Calls.List(domain.CallVariantManutencao))
}
