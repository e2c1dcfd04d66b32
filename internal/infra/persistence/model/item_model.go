package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodItemModel mirrors the 'food_items' table. LikeCount and ShareCount are
// the denormalized counter ledger; both carry a CHECK (>= 0) in the schema
// and every adjustment clamps at zero.
type FoodItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:numeric(10,2)"`
	Category     string    `gorm:"type:varchar(64)"`
	VideoURL     string    `gorm:"type:text"`
	ThumbnailURL string    `gorm:"type:text"`
	IsReel       bool      `gorm:"not null;default:false"`
	IsAvailable  bool      `gorm:"not null;default:true"`
	LikeCount    int64     `gorm:"not null;default:0"`
	ShareCount   int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodItemModel) TableName() string {
	return "food_items"
}
