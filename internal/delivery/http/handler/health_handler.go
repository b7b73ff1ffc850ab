package handler

import (
	"context"

	"kindred/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

// Health reports per-dependency status. The hot cache being down is a
// degradation, not an outage: scores fall back to the durable table and
// the engine.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	type status struct {
		Database string `json:"database"`
		Cache    string `json:"cache"`
	}

	st := status{Database: "ok", Cache: "ok"}
	healthy := true

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			st.Database = "down"
			healthy = false
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			st.Cache = "degraded"
		}
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", st)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
