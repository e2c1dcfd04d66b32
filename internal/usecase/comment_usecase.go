package usecase

import (
	"context"

	"bitefeed/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentOutput is the result of appending a comment.
type CommentOutput struct {
	Comment       *entity.Comment `json:"comment"`
	TotalComments int64           `json:"total_comments"`
}

// CommentPage is one offset-based page of an item's comment log, newest
// first. Later pages may shift when comments are appended between page reads;
// that weak-consistency behavior is accepted and documented, not a defect.
type CommentPage struct {
	Comments      []*entity.Comment `json:"comments"`
	CurrentPage   int               `json:"current_page"`
	TotalPages    int               `json:"total_pages"`
	TotalComments int64             `json:"total_comments"`
	ItemsPerPage  int               `json:"items_per_page"`
}

// CommentUsecase manages the append-only per-item comment log.
type CommentUsecase interface {
	// AddComment validates and appends a comment authored by the principal.
	// Fails with VALIDATION_FAILED when the text trims to empty and with
	// ITEM_NOT_FOUND when the item does not exist.
	AddComment(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, text string) (*CommentOutput, error)

	// ListComments returns one page of the item's comment log in
	// reverse-chronological order, insertion order breaking ties.
	ListComments(ctx context.Context, itemID uuid.UUID, page, pageSize int) (*CommentPage, error)
}
