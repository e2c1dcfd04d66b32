// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an end user account. The liked/saved membership sets are
// stored separately (see repository.MembershipRepository); SubscriptionStatus
// is a cached projection of the user's most recent subscription request and is
// re-derived whenever that request transitions.
type User struct {
	ID                 uuid.UUID          // The Global Unique Identifier (GUID) for the user.
	Name               string             // Display name, also used as the comment author label.
	Email              string             // Login identifier, unique per user.
	PasswordHash       string             // Bcrypt hash of the user's password.
	SubscriptionStatus SubscriptionStatus // Cached projection of the latest subscription request.
	CreatedAt          time.Time          // Timestamp of when this account was created.
	UpdatedAt          time.Time          // Timestamp of the last modification.
}

// Principal returns the end-user principal for this account.
func (u *User) Principal() *Principal {
	return &Principal{Kind: PrincipalEndUser, ID: u.ID, Label: u.Name}
}
