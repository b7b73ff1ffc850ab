package routes

import (
	"kindred/internal/delivery/http/handler"
	"kindred/internal/delivery/http/middleware"
	"kindred/internal/usecase"
	"kindred/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Health    *handler.HealthHandler
	Auth      *middleware.AuthMiddleware
	Discovery usecase.DiscoveryUsecase
	Compat    usecase.CompatUsecase
	WS        *ws.Handler
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.deps.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1", r.deps.Auth.Middleware())

	handler.NewDiscoveryHandler(r.deps.Discovery).RegisterRoutes(v1)
	handler.NewCompatibilityHandler(r.deps.Discovery, r.deps.Compat).RegisterRoutes(v1)

	if r.deps.WS != nil {
		app.Get("/ws/notifications", r.deps.WS.HandleNotificationsWS, r.deps.Auth.Middleware())
	}
}
