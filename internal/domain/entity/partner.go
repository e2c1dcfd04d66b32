// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodPartner represents a partner account: a restaurant or vendor that
// publishes items and reviews subscription payment requests.
type FoodPartner struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the partner.
	Name         string    // Business name.
	ContactName  string    // Name of the contact person.
	Phone        string    // Contact phone number.
	Address      string    // Physical address of the business.
	Email        string    // Login identifier, unique per partner.
	PasswordHash string    // Bcrypt hash of the partner's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Principal returns the partner principal for this account.
func (p *FoodPartner) Principal() *Principal {
	return &Principal{Kind: PrincipalPartner, ID: p.ID, Label: p.Name}
}
