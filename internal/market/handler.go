package market

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const defaultHistoryDays = 7

// Handler exposes market data HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a market HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Prices returns current market snapshots for the tracked coins.
func (h *Handler) Prices(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Prices(c.UserContext()))
}

// History returns the market chart for one coin.
func (h *Handler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	days := c.QueryInt("days", defaultHistoryDays)
	if days <= 0 {
		days = defaultHistoryDays
	}
	return c.Status(http.StatusOK).JSON(h.service.History(c.UserContext(), id, days))
}
