package usecase

import (
	"context"

	"bitefeed/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionStatusOutput pairs the cached projection with the latest
// request record. Status always reflects the request record when one exists;
// the projection is reported alongside so a divergence can be observed.
type SubscriptionStatusOutput struct {
	Status  entity.SubscriptionStatus   `json:"subscription_status"`
	Request *entity.SubscriptionRequest `json:"subscription,omitempty"`
}

// SubscriptionUsecase drives the per-user subscription request state machine:
// submission, approval and rejection, with at most one request in an active
// state ({pending, approved}) per user at any time. Approval is terminal.
type SubscriptionUsecase interface {
	// Submit creates a pending request for the acting user. Requires a
	// non-empty reference code and a proof image; the proof upload happening
	// first means no request record exists if the upload fails. On success
	// the user's cached subscription status is synchronously set to pending.
	// Fails with DUPLICATE_PENDING_REQUEST when an active request exists.
	Submit(ctx context.Context, principal *entity.Principal, referenceCode string, proof []byte) (*entity.SubscriptionRequest, error)

	// GetStatus returns the acting user's latest request and derived status.
	GetStatus(ctx context.Context, principal *entity.Principal) (*SubscriptionStatusOutput, error)

	// ListPending returns all requests awaiting review, newest first.
	ListPending(ctx context.Context) ([]*entity.SubscriptionRequest, error)

	// ListAll returns all requests regardless of state, newest first.
	ListAll(ctx context.Context) ([]*entity.SubscriptionRequest, error)

	// Approve marks the request approved by the reviewing partner and updates
	// the owner's cached status. Fails with ALREADY_APPROVED when the request
	// is already approved; approval is terminal.
	Approve(ctx context.Context, requestID uuid.UUID, reviewer *entity.Principal) (*entity.SubscriptionRequest, error)

	// Reject marks the request rejected with the given reason (a default is
	// used when empty) and updates the owner's cached status. Fails with
	// INVALID_TRANSITION when the request is already approved.
	Reject(ctx context.Context, requestID uuid.UUID, reason string) (*entity.SubscriptionRequest, error)

	// PaymentQR renders the UPI payment QR for the fixed subscription amount.
	PaymentQR(ctx context.Context) ([]byte, error)
}
