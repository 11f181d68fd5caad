package service

import (
	"errors"
	"strings"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	ListSuppliers(q string) ([]model.Supplier, error)
	GetSupplier(id uuid.UUID) (*model.Supplier, error)
	CreateSupplier(req *CreateSupplierRequest, actor uuid.UUID) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *UpdateSupplierRequest, actor uuid.UUID) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID, actor uuid.UUID) error
}

type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=50"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

type UpdateSupplierRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Address      *string `json:"address"`
	Notes        *string `json:"notes"`
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(sRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: sRepo}
}

func (s *supplierService) ListSuppliers(q string) ([]model.Supplier, error) {
	return s.supplierRepo.FindAll(q)
}

func (s *supplierService) GetSupplier(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) CreateSupplier(req *CreateSupplierRequest, actor uuid.UUID) (*model.Supplier, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)
	if err := validate(req); err != nil {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      req.Address,
		Notes:        req.Notes,
	}
	supplier.CreatedBy = actor.String()
	supplier.UpdatedBy = actor.String()

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) UpdateSupplier(id uuid.UUID, req *UpdateSupplierRequest, actor uuid.UUID) (*model.Supplier, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if req.ContactEmail != nil {
		trimmed := strings.TrimSpace(*req.ContactEmail)
		req.ContactEmail = &trimmed
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	supplier, err := s.GetSupplier(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactEmail != nil {
		supplier.ContactEmail = *req.ContactEmail
	}
	if req.Phone != nil {
		supplier.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}
	supplier.UpdatedBy = actor.String()

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(id uuid.UUID, actor uuid.UUID) error {
	if err := s.supplierRepo.Delete(id, actor.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}
	return nil
}
