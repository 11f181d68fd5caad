package service

import (
	"errors"
	"strings"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockService interface {
	AdjustStock(req *AdjustStockRequest, actor uuid.UUID) (*AdjustStockResult, error)
	ListLogs(productID uuid.UUID) ([]model.StockLog, error)
}

// AdjustStockRequest applies Change to the product's stock. Change is a
// pointer so a missing value is told apart from zero.
type AdjustStockRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Change    *int   `json:"change" validate:"required,min=-1000000000,max=1000000000"`
	Reason    string `json:"reason" validate:"max=500"`
}

type AdjustStockResult struct {
	Product *model.Product  `json:"product"`
	Log     *model.StockLog `json:"log"`
}

type stockService struct {
	productRepo  repository.ProductRepository
	stockLogRepo repository.StockLogRepository
	db           *gorm.DB
	notifier     Notifier
}

func NewStockService(pRepo repository.ProductRepository, lRepo repository.StockLogRepository, db *gorm.DB, notifier Notifier) StockService {
	return &stockService{
		productRepo:  pRepo,
		stockLogRepo: lRepo,
		db:           db,
		notifier:     notifierOrNoop(notifier),
	}
}

func (s *stockService) AdjustStock(req *AdjustStockRequest, actor uuid.UUID) (*AdjustStockResult, error) {
	req.ProductID = strings.TrimSpace(req.ProductID)
	if err := validate(req); err != nil {
		return nil, err
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, invalid("Validation failed: productId is not a valid id")
	}
	change := *req.Change

	var entry *model.StockLog

	// The row lock serializes concurrent adjustments of the same product.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindForUpdate(tx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		before := product.Stock
		after := model.ClampStock(before, change)

		if err := s.productRepo.UpdateStock(tx, product.ID, after, actor.String()); err != nil {
			return err
		}

		actorID := actor
		entry = &model.StockLog{
			ProductID: product.ID,
			Change:    change,
			Before:    before,
			After:     after,
			Reason:    strings.TrimSpace(req.Reason),
			UserID:    &actorID,
		}
		return s.stockLogRepo.Create(tx, entry)
	})
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify("stock_update", "stock_adjusted", map[string]interface{}{
		"product": map[string]interface{}{
			"id":    product.ID,
			"sku":   product.SKU,
			"name":  product.Name,
			"stock": product.Stock,
		},
		"log":    entry,
		"userId": actor,
	})

	return &AdjustStockResult{Product: product, Log: entry}, nil
}

func (s *stockService) ListLogs(productID uuid.UUID) ([]model.StockLog, error) {
	return s.stockLogRepo.FindByProductID(productID)
}
