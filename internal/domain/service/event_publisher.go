package service

import (
	"context"
	"time"
)

// Event types emitted by the interaction and subscription use cases.
const (
	EventItemLiked             = "item.liked"
	EventItemUnliked           = "item.unliked"
	EventItemSaved             = "item.saved"
	EventItemUnsaved           = "item.unsaved"
	EventItemShared            = "item.shared"
	EventItemCommented         = "item.commented"
	EventSubscriptionSubmitted = "subscription.submitted"
	EventSubscriptionApproved  = "subscription.approved"
	EventSubscriptionRejected  = "subscription.rejected"
)

// DomainEvent represents a fact about an interaction or a subscription
// transition, published for the analytics pipeline. Publishing is
// best-effort: a publish failure never fails the operation that produced it.
type DomainEvent struct {
	Type       string            `json:"type"`
	SubjectID  string            `json:"subject_id,omitempty"` // Acting principal id.
	ItemID     string            `json:"item_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEvent publishes a domain event for async processing
	PublishEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
