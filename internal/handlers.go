package internal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/receipt-points/internal/model"
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) ProcessReceipt(c *fiber.Ctx) error {
	var i model.ReceiptInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on process receipt request: %s", err.Error())
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "Error on process receipt request", "data": "incorrect request format"})
	}

	id, err := h.Service.ProcessReceipt(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on process receipt request: %s", err.Error())
		if errors.Is(err, ErrInvalidReceipt) || errors.Is(err, model.ErrInvalidAmount) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "Error on process receipt request", "data": err.Error()})
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func (h *Handlers) GetPoints(c *fiber.Ctx) error {
	points, err := h.Service.GetPoints(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "No receipt found for that id"})
		}
		h.logger.Errorf("Error on get points request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"points": points})
}
