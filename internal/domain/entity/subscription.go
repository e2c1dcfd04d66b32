// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the state of a subscription request, and of
// the cached projection on the user profile.
type SubscriptionStatus string

const (
	// SubscriptionNone means the user has never submitted a request. It only
	// appears on the user projection, never on a request record.
	SubscriptionNone SubscriptionStatus = "none"
	// SubscriptionPending means the request awaits manual payment verification.
	SubscriptionPending SubscriptionStatus = "pending"
	// SubscriptionApproved is terminal: the paid tier is active.
	SubscriptionApproved SubscriptionStatus = "approved"
	// SubscriptionRejected means the payment could not be verified. The user
	// may submit a new request.
	SubscriptionRejected SubscriptionStatus = "rejected"
)

// String returns the string representation of the SubscriptionStatus.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsValid checks if the SubscriptionStatus is a valid value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionNone, SubscriptionPending, SubscriptionApproved, SubscriptionRejected:
		return true
	default:
		return false
	}
}

// Active reports whether a request in this state blocks a new submission.
// At most one request per user may be in an active state at a time.
func (s SubscriptionStatus) Active() bool {
	return s == SubscriptionPending || s == SubscriptionApproved
}

// Reviewable reports whether a reviewer may still approve or reject a request
// in this state. Approval is terminal; a rejected request may be re-reviewed.
func (s SubscriptionStatus) Reviewable() bool {
	return s == SubscriptionPending || s == SubscriptionRejected
}

// SubscriptionRequest is a user-submitted, partner-reviewed record
// representing a paid-tier membership claim awaiting manual verification.
// ProofURL is set once at submission and immutable afterwards.
type SubscriptionRequest struct {
	ID              uuid.UUID          // The Global Unique Identifier (GUID) for the request.
	UserID          uuid.UUID          // The user that owns this request.
	Status          SubscriptionStatus // Current state; never "none".
	ReferenceCode   string             // Externally supplied payment reference (UTR code).
	ProofURL        string             // Location of the uploaded payment screenshot.
	Amount          float64            // Fixed amount the user claims to have transferred.
	ReviewedBy      *uuid.UUID         // Partner that approved the request, if any.
	RejectionReason string             // Reviewer-supplied reason, set on rejection.
	CreatedAt       time.Time          // Timestamp of submission.
	UpdatedAt       time.Time          // Timestamp of the last transition.
}
