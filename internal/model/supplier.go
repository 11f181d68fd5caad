package model

type Supplier struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null;index" json:"name"`
	ContactEmail string `gorm:"type:varchar(255)" json:"contactEmail"`
	Phone        string `gorm:"type:varchar(50)" json:"phone"`
	Address      string `gorm:"type:text" json:"address"`
	Notes        string `gorm:"type:text" json:"notes"`
}
