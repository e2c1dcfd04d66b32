// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bitefeed/internal/domain/entity"

	"github.com/google/uuid"
)

// MembershipRepository is the membership set store: per-user sets of item
// references (liked, saved) with no duplicates. No business rules live here;
// all invariant enforcement is in the interaction use case. Each operation is
// an independently consistent single-document write.
type MembershipRepository interface {
	// AddMember inserts the item into the user's set. Inserting an existing
	// member is a no-op, preserving set semantics.
	AddMember(ctx context.Context, userID, itemID uuid.UUID, set entity.MembershipSet) error

	// RemoveMember deletes the item from the user's set. Removing an absent
	// member is a no-op.
	RemoveMember(ctx context.Context, userID, itemID uuid.UUID, set entity.MembershipSet) error

	// Contains reports whether the item is currently in the user's set.
	Contains(ctx context.Context, userID, itemID uuid.UUID, set entity.MembershipSet) (bool, error)

	// ListMembers returns the item ids in the user's set, newest first.
	ListMembers(ctx context.Context, userID uuid.UUID, set entity.MembershipSet) ([]uuid.UUID, error)
}
