package usecase

import (
	"context"

	"bitefeed/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleResult reports the outcome of a like/save toggle.
type ToggleResult struct {
	// Member is the new membership state of the item in the user's set.
	Member bool `json:"member"`
	// LikeCount is the item's like counter after the toggle. For the saved
	// set it is the counter as last read, since saves are not counted.
	LikeCount int64 `json:"like_count"`
}

// InteractionsOutput bundles a user's liked and saved items.
type InteractionsOutput struct {
	LikedItems []*entity.FoodItem `json:"liked_items"`
	SavedItems []*entity.FoodItem `json:"saved_items"`
	TotalLiked int                `json:"total_liked"`
	TotalSaved int                `json:"total_saved"`
}

// InteractionUsecase coordinates like/save toggles and share counting so the
// membership sets and the counter ledger stay mutually consistent without a
// cross-document transaction.
type InteractionUsecase interface {
	// Toggle flips the item's membership in the given set for the acting end
	// user and, for the liked set, adjusts the item's counter. The membership
	// write is authoritative; a failed counter write is reported as success
	// with a stale count. Replaying an identical toggle an even number of
	// times restores the original state, so it is NOT safe to retry blindly
	// on timeout: callers must re-read membership first.
	Toggle(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, set entity.MembershipSet) (*ToggleResult, error)

	// Share increments the item's share counter and returns the new value.
	Share(ctx context.Context, itemID uuid.UUID) (int64, error)

	// GetInteractions returns the acting user's liked and saved items.
	GetInteractions(ctx context.Context, principal *entity.Principal) (*InteractionsOutput, error)
}
