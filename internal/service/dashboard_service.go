package service

import (
	"time"

	"go-inventory-pro/internal/repository"
)

type DashboardService interface {
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	logRepo           repository.StockLogRepository
	lowStockThreshold int
}

func NewDashboardService(logRepo repository.StockLogRepository, lowStockThreshold int) DashboardService {
	return &dashboardService{logRepo: logRepo, lowStockThreshold: lowStockThreshold}
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.logRepo.GetStockMovement(startDate, endDate)
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.logRepo.GetDashboardStats(s.lowStockThreshold)
}
