package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/actions"
)

// RegisterActionRoutes wires the shared currency-action validator.
func RegisterActionRoutes(r fiber.Router, h *actions.Handler) {
	r.Post("/validate", h.Validate)
}
