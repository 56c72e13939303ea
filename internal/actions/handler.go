package actions

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/rates"
)

// Handler exposes the shared action validator so the form can run the same
// pre-submit check the server uses.
type Handler struct {
	rates rates.Table
}

// NewHandler builds a validation handler bound to the configured rate table.
func NewHandler(table rates.Table) *Handler {
	return &Handler{rates: table}
}

type validateRequest struct {
	Action             string  `json:"action"`
	Currency           string  `json:"currency"`
	Amount             string  `json:"amount"`
	AvailableAmount    float64 `json:"availableAmount"`
	TargetCurrency     string  `json:"targetCurrency"`
	DestinationAddress string  `json:"destinationAddress"`
	CashoutMethod      string  `json:"cashoutMethod"`
	CashoutAccount     string  `json:"cashoutAccount"`
}

// Validate runs the action validator against a proposed operation.
func (h *Handler) Validate(c *fiber.Ctx) error {
	var req validateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := Validate(Input{
		Kind:               Kind(req.Action),
		Currency:           req.Currency,
		Amount:             req.Amount,
		Available:          req.AvailableAmount,
		TargetCurrency:     req.TargetCurrency,
		DestinationAddress: req.DestinationAddress,
		CashoutMethod:      req.CashoutMethod,
		CashoutAccount:     req.CashoutAccount,
	}, h.rates)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.Status(http.StatusOK).JSON(fiber.Map{"valid": false, "error": verr.Message})
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"valid": true})
}
