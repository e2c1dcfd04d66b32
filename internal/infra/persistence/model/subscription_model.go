package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionRequestModel mirrors the 'subscription_requests' table.
//
// The one-active-request-per-user invariant is enforced by a partial unique
// index the schema creates alongside this table:
//
//	CREATE UNIQUE INDEX uq_subscription_requests_active
//	    ON subscription_requests (user_id)
//	    WHERE status IN ('pending', 'approved');
//
// A concurrent duplicate submit surfaces as a unique constraint violation.
type SubscriptionRequestModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;index;not null"`
	Status          string     `gorm:"type:varchar(16);not null"`
	ReferenceCode   string     `gorm:"type:varchar(64);not null"`
	ProofURL        string     `gorm:"type:text;not null"`
	Amount          float64    `gorm:"type:numeric(10,2);not null"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionRequestModel) TableName() string {
	return "subscription_requests"
}
