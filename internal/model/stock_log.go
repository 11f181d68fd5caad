package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStockLogImmutable = errors.New("stock log entries cannot be modified")

// StockLog is the audit row written for every stock adjustment.
type StockLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index" json:"productId"`
	Change    int        `gorm:"not null" json:"change"`
	Before    int        `gorm:"column:stock_before;not null" json:"before"`
	After     int        `gorm:"column:stock_after;not null" json:"after"`
	Reason    string     `gorm:"type:text" json:"reason"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	User      *User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time  `gorm:"index" json:"createdAt"`
}

type stockLogFields StockLog

// MarshalJSON exposes the author as a UserResponse.
func (l StockLog) MarshalJSON() ([]byte, error) {
	var author *UserResponse
	if l.User != nil {
		r := l.User.ToResponse()
		author = &r
	}
	return json.Marshal(struct {
		stockLogFields
		User *UserResponse `json:"user,omitempty"`
	}{stockLogFields(l), author})
}

func (l *StockLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *StockLog) BeforeUpdate(tx *gorm.DB) error {
	return ErrStockLogImmutable
}

func (l *StockLog) BeforeDelete(tx *gorm.DB) error {
	return ErrStockLogImmutable
}
