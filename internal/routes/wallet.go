package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/wallet"
)

// RegisterWalletRoutes wires wallet CRUD endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Get("/wallets", h.List)
	r.Post("/wallets", h.Create)
	r.Put("/wallets/:id", h.Update)
	r.Delete("/wallets/:id", h.Delete)
}
