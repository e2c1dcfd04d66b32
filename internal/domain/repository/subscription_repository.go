// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bitefeed/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription request is not found.
	ErrSubscriptionNotFound = errors.New("subscription request not found")
	// ErrDuplicateActiveSubscription is returned when creating a request would
	// violate the one-active-request-per-user constraint.
	ErrDuplicateActiveSubscription = errors.New("active subscription request already exists")
)

// SubscriptionRepository defines the interface for subscription request persistence.
type SubscriptionRepository interface {
	// Create persists a new subscription request. The backing store enforces
	// at most one request per user with status in {pending, approved} and
	// reports a violation as ErrDuplicateActiveSubscription.
	Create(ctx context.Context, request *entity.SubscriptionRequest) error

	// FindByID retrieves a request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionRequest, error)

	// FindActiveByUser retrieves the user's request with status in
	// {pending, approved}, or ErrSubscriptionNotFound when none exists.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionRequest, error)

	// FindLatestByUser retrieves the user's most recently created request,
	// or ErrSubscriptionNotFound when the user never submitted one.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionRequest, error)

	// ListByStatus retrieves all requests in the given state, newest first.
	ListByStatus(ctx context.Context, status entity.SubscriptionStatus) ([]*entity.SubscriptionRequest, error)

	// ListAll retrieves all requests regardless of state, newest first.
	ListAll(ctx context.Context) ([]*entity.SubscriptionRequest, error)

	// UpdateReview rewrites the request's review outcome: the new status plus
	// reviewer reference or rejection reason. ProofURL, ReferenceCode and
	// Amount are immutable and never touched.
	UpdateReview(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus, reviewedBy *uuid.UUID, reason string) error
}
