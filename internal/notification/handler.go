package notification

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes notification HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a notification HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns every notification, seeding sample data on first use.
func (h *Handler) List(c *fiber.Ctx) error {
	notifications, err := h.service.List(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch notification data",
			"message": err.Error(),
		})
	}
	return c.Status(http.StatusOK).JSON(notifications)
}
