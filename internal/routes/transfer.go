package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/transfer"
)

// RegisterTransferRoutes wires the transfer processor and transaction history.
func RegisterTransferRoutes(r fiber.Router, h *transfer.Handler) {
	r.Post("/transfer", h.Process)
	r.Get("/transactions", h.History)
}
