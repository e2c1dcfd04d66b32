package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultCommentPageSize = 20

// commentService implements the CommentUsecase interface. Comment appends are
// purely additive and race-free in themselves; the total reported alongside an
// append may lag by one read under concurrent writers.
type commentService struct {
	itemRepo  repository.ItemRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	itemRepo repository.ItemRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		itemRepo:  itemRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// AddComment validates and appends a comment to the item's log.
func (srv *commentService) AddComment(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, text string) (*usecase.CommentOutput, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment text is required")
	}

	if _, err := srv.itemRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound.WrapMessage("cannot comment on a missing item")
		}

		return nil, errors.Wrap(err, "failed to load item")
	}

	comment := &entity.Comment{
		ItemID:      itemID,
		AuthorID:    principal.ID,
		AuthorLabel: principal.Label,
		Text:        trimmed,
	}

	total, err := srv.itemRepo.AppendComment(ctx, comment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to append comment")
	}

	srv.publishCommented(ctx, principal.ID, itemID)

	return &usecase.CommentOutput{
		Comment:       comment,
		TotalComments: total,
	}, nil
}

// ListComments returns one reverse-chronological page of the item's log.
// Pagination is offset-based: later pages may shift when comments are
// appended between page reads, which is accepted weak-consistency behavior.
func (srv *commentService) ListComments(ctx context.Context, itemID uuid.UUID, page, pageSize int) (*usecase.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultCommentPageSize
	}

	if _, err := srv.itemRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound.WrapMessage("cannot list comments of a missing item")
		}

		return nil, errors.Wrap(err, "failed to load item")
	}

	offset := (page - 1) * pageSize
	comments, total, err := srv.itemRepo.ListComments(ctx, itemID, offset, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &usecase.CommentPage{
		Comments:      comments,
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalComments: total,
		ItemsPerPage:  pageSize,
	}, nil
}

func (srv *commentService) publishCommented(ctx context.Context, authorID, itemID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		Type:       service.EventItemCommented,
		SubjectID:  authorID.String(),
		ItemID:     itemID.String(),
		OccurredAt: time.Now(),
	}

	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish comment event",
			"itemID", itemID,
			"error", err,
		)
	}
}
