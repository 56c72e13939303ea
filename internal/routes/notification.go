package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/notification"
)

// RegisterNotificationRoutes wires notification endpoints.
func RegisterNotificationRoutes(r fiber.Router, h *notification.Handler) {
	r.Get("/notifications", h.List)
}
