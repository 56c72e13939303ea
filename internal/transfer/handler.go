package transfer

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultHistoryLimit = 50

// Handler exposes transfer HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a transfer HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type transferRequest struct {
	FromWalletID int     `json:"fromWalletId"`
	ToAddress    string  `json:"toAddress"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// Process executes a transfer out of a wallet.
func (h *Handler) Process(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	res, err := h.service.Process(c.UserContext(), Input{
		FromWalletID: req.FromWalletID,
		ToAddress:    req.ToAddress,
		Amount:       req.Amount,
		Currency:     req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrWalletNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Source wallet not found"})
		case errors.Is(err, ErrInvalidBTCAddress):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid BTC address format"})
		case errors.Is(err, ErrInsufficientBalance):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient balance"})
		case errors.Is(err, ErrInvalidAmount):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid amount"})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to process transfer",
				"message": err.Error(),
			})
		}
	}

	rec := res.Record
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"transaction": fiber.Map{
			"id":            res.TransactionID,
			"from":          rec.FromAddress,
			"to":            rec.ToAddress,
			"amount":        rec.Amount,
			"currency":      rec.Currency,
			"timestamp":     time.Now().UTC().Format(time.RFC3339Nano),
			"status":        StatusCompleted,
			"balanceChange": fmt.Sprintf("-%s %s", FormatAmount(rec.Amount), rec.Currency),
		},
		"transactionId": res.TransactionID,
		"details": fiber.Map{
			"from":     rec.FromAddress,
			"to":       rec.ToAddress,
			"amount":   rec.Amount,
			"currency": rec.Currency,
		},
	})
}

// History lists recent transfer records.
func (h *Handler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := h.service.ListRecent(c.UserContext(), limit)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch transactions",
			"message": err.Error(),
		})
	}
	return c.Status(http.StatusOK).JSON(records)
}
