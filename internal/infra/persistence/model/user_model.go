// Package model contains the GORM persistence models mirroring the
// PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. SubscriptionStatus is the cached
// projection of the user's latest subscription request.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(100);not null"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	SubscriptionStatus string    `gorm:"type:varchar(16);not null;default:none"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
