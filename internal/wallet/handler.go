package wallet

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type walletRequest struct {
	UserID  int                `json:"userId"`
	Name    string             `json:"name"`
	Address string             `json:"address"`
	Status  string             `json:"status"`
	Balance map[string]float64 `json:"balance"`
}

// List returns every wallet, seeding sample data on first use.
func (h *Handler) List(c *fiber.Ctx) error {
	wallets, err := h.service.List(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch wallet data",
			"message": err.Error(),
		})
	}
	return c.Status(http.StatusOK).JSON(wallets)
}

// Create adds a wallet.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req walletRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	w, err := h.service.Create(c.UserContext(), CreateInput{
		UserID:  req.UserID,
		Name:    req.Name,
		Address: req.Address,
		Status:  req.Status,
		Balance: req.Balance,
	})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create wallet",
			"message": err.Error(),
		})
	}
	return c.Status(http.StatusCreated).JSON(w)
}

// Update replaces a wallet record.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid wallet id")
	}
	var req walletRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	current, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Wallet not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update wallet",
			"message": err.Error(),
		})
	}

	current.Name = req.Name
	current.Address = req.Address
	if req.Status != "" {
		current.Status = req.Status
	}
	if req.Balance != nil {
		current.Balance = req.Balance
	}
	if req.UserID != 0 {
		current.UserID = req.UserID
	}

	updated, err := h.service.Update(c.UserContext(), current)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Wallet not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update wallet",
			"message": err.Error(),
		})
	}
	return c.Status(http.StatusOK).JSON(updated)
}

// Delete removes a wallet record.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid wallet id")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Wallet not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete wallet",
			"message": err.Error(),
		})
	}
	return c.SendStatus(http.StatusNoContent)
}
