package handler

import (
	"go-inventory-pro/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	product, err := h.service.CreateProduct(&req, actor)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	product, err := h.service.UpdateProduct(id, &req, actor)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(id, actor); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"msg": "Deleted"})
}
