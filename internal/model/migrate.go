package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables for every persisted record.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Supplier{}, &Product{}, &StockLog{})
}
