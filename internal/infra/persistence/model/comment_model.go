package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'item_comments' table. Rows are append-only; the
// bigserial ID doubles as the tie-breaker when two comments share a
// creation timestamp.
type CommentModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ItemID      uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null"`
	AuthorLabel string    `gorm:"type:varchar(100);not null"`
	Text        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "item_comments"
}
