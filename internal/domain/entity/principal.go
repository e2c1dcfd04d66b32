// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// PrincipalKind represents the kind of authenticated actor performing an operation.
type PrincipalKind string

const (
	// PrincipalEndUser indicates a regular end user browsing and interacting with items.
	PrincipalEndUser PrincipalKind = "end_user"
	// PrincipalPartner indicates a food partner publishing items and reviewing subscriptions.
	PrincipalPartner PrincipalKind = "partner"
)

// String returns the string representation of the PrincipalKind.
func (k PrincipalKind) String() string {
	return string(k)
}

// IsValid checks if the PrincipalKind is a valid value.
func (k PrincipalKind) IsValid() bool {
	switch k {
	case PrincipalEndUser, PrincipalPartner:
		return true
	default:
		return false
	}
}

// Principal is the authenticated actor resolved from a verified credential.
// It is derived once per request at the boundary and never persisted. The two
// kinds are mutually exclusive; downstream operations switch on Kind instead
// of relying on optional role fields.
type Principal struct {
	Kind  PrincipalKind // Which table the subject was resolved against.
	ID    uuid.UUID     // The subject's identity in that table.
	Label string        // Display name, used e.g. as the comment author label.
}

// IsEndUser reports whether the principal is an end user.
func (p *Principal) IsEndUser() bool {
	return p.Kind == PrincipalEndUser
}

// IsPartner reports whether the principal is a food partner.
func (p *Principal) IsPartner() bool {
	return p.Kind == PrincipalPartner
}
