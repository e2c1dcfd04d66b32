// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodItem represents a menu entry or a video reel published by a partner.
// LikeCount and ShareCount form the item's counter ledger: denormalized
// aggregates derived from the per-user membership sets. The membership set is
// the source of truth; the counters are a best-effort cache that may lag but
// never reports a negative value.
type FoodItem struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the item.
	PartnerID    uuid.UUID // The partner that published this item.
	Name         string    // Dish or reel title.
	Description  string    // Free-form description.
	Price        float64   // Listed price; zero for pure reels.
	Category     string    // Coarse category, e.g. "Food".
	VideoURL     string    // Reel video location, empty for plain menu entries.
	ThumbnailURL string    // Preview image location.
	IsReel       bool      // Whether this item is a short video reel.
	IsAvailable  bool      // Whether the item is currently orderable.
	LikeCount    int64     // Denormalized count of users whose liked set contains this item.
	ShareCount   int64     // Denormalized count of share actions.
	CreatedAt    time.Time // Timestamp of when this item was published.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
