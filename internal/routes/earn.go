package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/earn"
)

// RegisterEarnRoutes wires move-to-earn endpoints.
func RegisterEarnRoutes(r fiber.Router, h *earn.Handler) {
	r.Post("/earn/sync", h.Sync)
}
