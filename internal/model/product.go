package model

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// The browser client expects price as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null;index" json:"name"`
	SKU         string          `gorm:"type:varchar(64);index" json:"sku"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	Stock       int             `gorm:"not null;default:0;check:chk_products_stock,stock >= 0" json:"stock"`

	// Optional supplier
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplierId"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"supplier,omitempty"`
}

// ClampStock applies a signed delta to a stock level, never going below zero.
// Increments that would overflow saturate at math.MaxInt.
func ClampStock(before, change int) int {
	if change > 0 && before > math.MaxInt-change {
		return math.MaxInt
	}
	after := before + change
	if after < 0 {
		return 0
	}
	return after
}
