package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel mirrors the 'user_item_memberships' table: one row per
// (user, item, set) triple. The composite primary key gives set semantics;
// duplicate inserts conflict and are dropped with ON CONFLICT DO NOTHING.
type MembershipModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SetType   string    `gorm:"type:varchar(16);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "user_item_memberships"
}
