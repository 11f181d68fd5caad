package service

import (
	"errors"
	"strings"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	ListProducts(q string) ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	CreateProduct(req *CreateProductRequest, actor uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest, actor uuid.UUID) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actor uuid.UUID) error
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	SKU         string          `json:"sku" validate:"max=64"`
	Description string          `json:"description"`
	SupplierID  *string         `json:"supplierId"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest changes only the fields that are present. An empty
// supplierId detaches the supplier.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	SKU         *string          `json:"sku" validate:"omitempty,max=64"`
	Description *string          `json:"description"`
	SupplierID  *string          `json:"supplierId"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
}

type productService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	notifier     Notifier
}

func NewProductService(pRepo repository.ProductRepository, sRepo repository.SupplierRepository, notifier Notifier) ProductService {
	return &productService{
		productRepo:  pRepo,
		supplierRepo: sRepo,
		notifier:     notifierOrNoop(notifier),
	}
}

func (s *productService) ListProducts(q string) ([]model.Product, error) {
	return s.productRepo.FindAll(q)
}

func (s *productService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(req *CreateProductRequest, actor uuid.UUID) (*model.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(req); err != nil {
		return nil, err
	}

	supplierID, err := s.resolveSupplier(req.SupplierID)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		SKU:         strings.TrimSpace(req.SKU),
		Description: req.Description,
		SupplierID:  supplierID,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	product.CreatedBy = actor.String()
	product.UpdatedBy = actor.String()

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	created, err := s.GetProduct(product.ID)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify("stock_update", "product_created", productEvent(created, actor))
	return created, nil
}

func (s *productService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest, actor uuid.UUID) (*model.Product, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.SKU != nil {
		existing.SKU = strings.TrimSpace(*req.SKU)
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Stock != nil {
		existing.Stock = *req.Stock
	}
	if req.SupplierID != nil {
		supplierID, err := s.resolveSupplier(req.SupplierID)
		if err != nil {
			return nil, err
		}
		existing.SupplierID = supplierID
		existing.Supplier = nil
	}
	existing.UpdatedBy = actor.String()

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	updated, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify("stock_update", "product_updated", productEvent(updated, actor))
	return updated, nil
}

func (s *productService) DeleteProduct(id uuid.UUID, actor uuid.UUID) error {
	if err := s.productRepo.Delete(id, actor.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	s.notifier.Notify("stock_update", "product_deleted", map[string]interface{}{
		"id":     id,
		"userId": actor,
	})
	return nil
}

// resolveSupplier turns an optional supplier reference into an id, checking it exists.
func (s *productService) resolveSupplier(ref *string) (*uuid.UUID, error) {
	if ref == nil || strings.TrimSpace(*ref) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*ref))
	if err != nil {
		return nil, invalid("Validation failed: supplierId is not a valid id")
	}
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("Validation failed: supplier does not exist")
		}
		return nil, err
	}
	return &id, nil
}

func productEvent(p *model.Product, actor uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"product": map[string]interface{}{
			"id":    p.ID,
			"sku":   p.SKU,
			"name":  p.Name,
			"stock": p.Stock,
			"price": p.Price,
		},
		"userId": actor,
	}
}
