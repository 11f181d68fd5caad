package repository

import (
	"fmt"
	"time"

	"go-inventory-pro/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StockLogRepository interface {
	Create(tx *gorm.DB, log *model.StockLog) error
	FindByProductID(productID uuid.UUID) ([]model.StockLog, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetDashboardStats(lowStockThreshold int) (*DashboardStats, error)
}

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalProducts  int64           `json:"totalProducts"`
	TotalSuppliers int64           `json:"totalSuppliers"`
	LowStockCount  int64           `json:"lowStockCount"`
	TotalValuation decimal.Decimal `json:"totalValuation"`
}

type stockLogRepo struct {
	db *gorm.DB
}

func NewStockLogRepo(db *gorm.DB) StockLogRepository {
	return &stockLogRepo{db}
}

func (r *stockLogRepo) Create(tx *gorm.DB, log *model.StockLog) error {
	return tx.Omit("User").Create(log).Error
}

func (r *stockLogRepo) FindByProductID(productID uuid.UUID) ([]model.StockLog, error) {
	logs := []model.StockLog{}
	err := r.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "role")
		}).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *stockLogRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	results := []StockMovementData{}

	rows, err := r.db.Model(&model.StockLog{}).
		Select(`
			DATE(created_at) as day,
			COALESCE(SUM(CASE WHEN stock_after > stock_before THEN stock_after - stock_before ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN stock_after < stock_before THEN stock_before - stock_after ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("day ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			day  interface{}
			data StockMovementData
		)
		if err := rows.Scan(&day, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		data.Date = formatDay(day)
		results = append(results, data)
	}
	return results, rows.Err()
}

// formatDay flattens what DATE() returns on each driver to YYYY-MM-DD.
func formatDay(v interface{}) string {
	switch d := v.(type) {
	case time.Time:
		return d.Format("2006-01-02")
	case []byte:
		return truncateDay(string(d))
	case string:
		return truncateDay(d)
	default:
		return fmt.Sprint(v)
	}
}

func truncateDay(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func (r *stockLogRepo) GetDashboardStats(lowStockThreshold int) (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Supplier{}).Count(&stats.TotalSuppliers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).Where("stock < ?", lowStockThreshold).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	var valuation decimal.NullDecimal
	if err := r.db.Model(&model.Product{}).Select("SUM(stock * price)").Row().Scan(&valuation); err != nil {
		return nil, err
	}
	if valuation.Valid {
		stats.TotalValuation = valuation.Decimal.Round(2)
	}

	return &stats, nil
}
