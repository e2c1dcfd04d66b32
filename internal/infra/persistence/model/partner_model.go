package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodPartnerModel mirrors the 'food_partners' table.
type FoodPartnerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	ContactName  string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(32)"`
	Address      string    `gorm:"type:text"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodPartnerModel) TableName() string {
	return "food_partners"
}
