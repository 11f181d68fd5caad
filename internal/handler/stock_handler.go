package handler

import (
	"go-inventory-pro/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

// AdjustStock applies a signed change to a product's stock.
// POST /api/stock/update
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req service.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	result, err := h.service.AdjustStock(&req, actor)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(result)
}

// GetLogs lists a product's stock history, newest first.
// GET /api/stock/logs/:productId
func (h *StockHandler) GetLogs(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	logs, err := h.service.ListLogs(productID)
	if err != nil {
		return err
	}
	return c.JSON(logs)
}
