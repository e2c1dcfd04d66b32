// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bitefeed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when a food item is not found.
var ErrItemNotFound = errors.New("food item not found")

// ItemRepository is the counter ledger and comment log for food items.
// Counter adjustments are single atomic statements (not read-modify-write
// pairs) so concurrent toggles shrink, without eliminating, the drift window
// between the membership sets and the denormalized counts. Counters never go
// negative; decrements clamp at zero instead of erroring, to tolerate
// stale-counter drift.
type ItemRepository interface {
	// FindByID retrieves a single item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error)

	// FindByIDs retrieves the items for the given ids, preserving only items
	// that still exist.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.FoodItem, error)

	// AdjustLikeCount atomically applies delta to the item's like counter,
	// clamped at zero, and returns the resulting value.
	AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int64) (int64, error)

	// IncrementShareCount atomically increments the item's share counter and
	// returns the resulting value.
	IncrementShareCount(ctx context.Context, id uuid.UUID) (int64, error)

	// AppendComment appends an immutable comment to the item's log, filling
	// in the assigned sequence number and timestamp, and returns the total
	// number of comments after the append.
	AppendComment(ctx context.Context, comment *entity.Comment) (int64, error)

	// ListComments returns a reverse-chronological slice of the item's
	// comment log together with the total count. Ties on the timestamp are
	// broken by insertion order, newest first.
	ListComments(ctx context.Context, itemID uuid.UUID, offset, limit int) ([]*entity.Comment, int64, error)
}
