package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/market"
)

// RegisterMarketRoutes wires price and history endpoints.
func RegisterMarketRoutes(r fiber.Router, h *market.Handler) {
	r.Get("/crypto/prices", h.Prices)
	r.Get("/crypto/history/:id", h.History)
}
