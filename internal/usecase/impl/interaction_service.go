package impl

import (
	"context"
	"log/slog"
	"time"

	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// interactionService implements the InteractionUsecase interface. It is the
// toggle coordinator: the membership set is the source of truth and the
// counter ledger a best-effort denormalization recomputed from it. The two
// writes are independent; a lost update between concurrent toggles for the
// same (user, item) pair is a tolerated weak-consistency window.
type interactionService struct {
	membershipRepo repository.MembershipRepository
	itemRepo       repository.ItemRepository
	userRepo       repository.UserRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewInteractionService is the constructor for interactionService.
func NewInteractionService(
	membershipRepo repository.MembershipRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.InteractionUsecase {
	return &interactionService{
		membershipRepo: membershipRepo,
		itemRepo:       itemRepo,
		userRepo:       userRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// Toggle flips the item's membership in the user's set and keeps the counter
// ledger consistent with it. The set mutation is persisted first; if the
// counter write then fails, the operation still reports success and the
// counter stays stale until the next corrective adjustment.
func (srv *interactionService) Toggle(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, set entity.MembershipSet) (*usecase.ToggleResult, error) {
	if !principal.IsEndUser() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only end users can toggle interactions")
	}
	if !set.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown membership set: " + set.String())
	}

	// Two independent reads; there is no cross-document lock.
	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound.WrapMessage("cannot toggle a missing item")
		}

		return nil, errors.Wrap(err, "failed to load item")
	}

	if _, err := srv.userRepo.FindByID(ctx, principal.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("acting user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	member, err := srv.membershipRepo.Contains(ctx, principal.ID, itemID, set)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read membership")
	}

	// The set write is authoritative; any failure here fails the toggle.
	if member {
		err = srv.membershipRepo.RemoveMember(ctx, principal.ID, itemID, set)
	} else {
		err = srv.membershipRepo.AddMember(ctx, principal.ID, itemID, set)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update membership set")
	}

	likeCount := item.LikeCount
	if set.Counted() {
		delta := int64(1)
		if member {
			delta = -1
		}

		newCount, countErr := srv.itemRepo.AdjustLikeCount(ctx, itemID, delta)
		if countErr != nil {
			// The membership write already succeeded, so the toggle is
			// reported successful; the counter lags until recomputed.
			srv.logger.Warn("like counter update failed, counter is stale",
				"itemID", itemID,
				"userID", principal.ID,
				"error", countErr,
			)
		} else {
			likeCount = newCount
		}
	}

	srv.publish(ctx, toggleEventType(set, !member), principal.ID, itemID)

	return &usecase.ToggleResult{
		Member:    !member,
		LikeCount: likeCount,
	}, nil
}

// Share increments the item's share counter.
func (srv *interactionService) Share(ctx context.Context, itemID uuid.UUID) (int64, error) {
	total, err := srv.itemRepo.IncrementShareCount(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return 0, domainerrors.ErrItemNotFound.WrapMessage("cannot share a missing item")
		}

		return 0, errors.Wrap(err, "failed to increment share count")
	}

	srv.publish(ctx, service.EventItemShared, uuid.Nil, itemID)

	return total, nil
}

// GetInteractions returns the acting user's liked and saved items.
func (srv *interactionService) GetInteractions(ctx context.Context, principal *entity.Principal) (*usecase.InteractionsOutput, error) {
	if !principal.IsEndUser() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only end users have interaction sets")
	}

	liked, err := srv.listItems(ctx, principal.ID, entity.SetLiked)
	if err != nil {
		return nil, err
	}

	saved, err := srv.listItems(ctx, principal.ID, entity.SetSaved)
	if err != nil {
		return nil, err
	}

	return &usecase.InteractionsOutput{
		LikedItems: liked,
		SavedItems: saved,
		TotalLiked: len(liked),
		TotalSaved: len(saved),
	}, nil
}

func (srv *interactionService) listItems(ctx context.Context, userID uuid.UUID, set entity.MembershipSet) ([]*entity.FoodItem, error) {
	ids, err := srv.membershipRepo.ListMembers(ctx, userID, set)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s set", set)
	}

	items, err := srv.itemRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s items", set)
	}

	return items, nil
}

func (srv *interactionService) publish(ctx context.Context, eventType string, subjectID, itemID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		Type:       eventType,
		ItemID:     itemID.String(),
		OccurredAt: time.Now(),
	}
	if subjectID != uuid.Nil {
		event.SubjectID = subjectID.String()
	}

	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish interaction event",
			"type", eventType,
			"itemID", itemID,
			"error", err,
		)
	}
}

func toggleEventType(set entity.MembershipSet, member bool) string {
	if set == entity.SetLiked {
		if member {
			return service.EventItemLiked
		}

		return service.EventItemUnliked
	}

	if member {
		return service.EventItemSaved
	}

	return service.EventItemUnsaved
}
