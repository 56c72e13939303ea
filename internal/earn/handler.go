package earn

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/wallet"
)

// Handler exposes move-to-earn HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an earn HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type syncRequest struct {
	WalletID int    `json:"walletId"`
	Steps    int    `json:"steps"`
	Token    string `json:"token"`
}

// Sync credits earned tokens from a step session to a wallet.
func (h *Handler) Sync(c *fiber.Ctx) error {
	var req syncRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Steps < 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Steps must not be negative"})
	}

	w, summary, err := h.service.Sync(c.UserContext(), req.WalletID, req.Steps, req.Token)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Wallet not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to sync steps",
			"message": err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"wallet": w, "summary": summary})
}
