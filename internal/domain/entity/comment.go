// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an immutable entry in an item's append-only comment log.
// The sequence number is assigned at insert time and breaks ordering ties
// between comments created within the same timestamp (newest first).
type Comment struct {
	ID          int64     // Monotonic sequence number within the log.
	ItemID      uuid.UUID // The item this comment belongs to.
	AuthorID    uuid.UUID // The principal that wrote the comment.
	AuthorLabel string    // Display name of the author, captured at write time.
	Text        string    // Comment body; never empty after trimming.
	CreatedAt   time.Time // Timestamp of when the comment was appended.
}
