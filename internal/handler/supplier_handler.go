package handler

import (
	"go-inventory-pro/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.ListSuppliers(c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(suppliers)
}

func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	supplier, err := h.service.GetSupplier(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req service.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	supplier, err := h.service.CreateSupplier(&req, actor)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req service.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	supplier, err := h.service.UpdateSupplier(id, &req, actor)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteSupplier(id, actor); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"msg": "Deleted"})
}
