package routes

import (
	"talent-rank/internal/delivery/http/handler"
	v1 "talent-rank/internal/delivery/http/routes/v1"
	"talent-rank/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	events *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, events *ws.Handler) *Registry {
	return &Registry{health: health, events: events}
}

func (r *Registry) Register(app *fiber.App, deps v1.Dependencies) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	if r.events != nil {
		app.Get("/ws/events", r.events.HandleEventsWS)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), deps)
}
