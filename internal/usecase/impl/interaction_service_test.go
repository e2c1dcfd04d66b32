package impl

import (
	"context"
	"testing"

	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	mockRepo "bitefeed/internal/mocks/repository"
	mockSvc "bitefeed/internal/mocks/service"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type interactionFixture struct {
	service        usecase.InteractionUsecase
	membershipRepo *mockRepo.MockMembershipRepository
	itemRepo       *mockRepo.MockItemRepository
	userRepo       *mockRepo.MockUserRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestInteractionService(t *testing.T) *interactionFixture {
	fx := &interactionFixture{
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		itemRepo:       mockRepo.NewMockItemRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewInteractionService(fx.membershipRepo, fx.itemRepo, fx.userRepo, fx.publisher, newDiscardLogger())

	return fx
}

func endUserPrincipal(id uuid.UUID) *entity.Principal {
	return &entity.Principal{Kind: entity.PrincipalEndUser, ID: id, Label: "Test User"}
}

func partnerPrincipal(id uuid.UUID) *entity.Principal {
	return &entity.Principal{Kind: entity.PrincipalPartner, ID: id, Label: "Test Partner"}
}

func TestInteractionService_Toggle_AddLike(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	item := &entity.FoodItem{ID: itemID, LikeCount: 5}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(item, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.membershipRepo.EXPECT().Contains(ctx, userID, itemID, entity.SetLiked).Return(false, nil)
	fx.membershipRepo.EXPECT().AddMember(ctx, userID, itemID, entity.SetLiked).Return(nil)
	fx.itemRepo.EXPECT().AdjustLikeCount(ctx, itemID, int64(1)).Return(int64(6), nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	result, err := fx.service.Toggle(ctx, endUserPrincipal(userID), itemID, entity.SetLiked)
	require.NoError(t, err)
	assert.True(t, result.Member)
	assert.Equal(t, int64(6), result.LikeCount)
}

func TestInteractionService_Toggle_RemoveLike(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	item := &entity.FoodItem{ID: itemID, LikeCount: 6}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(item, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.membershipRepo.EXPECT().Contains(ctx, userID, itemID, entity.SetLiked).Return(true, nil)
	fx.membershipRepo.EXPECT().RemoveMember(ctx, userID, itemID, entity.SetLiked).Return(nil)
	fx.itemRepo.EXPECT().AdjustLikeCount(ctx, itemID, int64(-1)).Return(int64(5), nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	result, err := fx.service.Toggle(ctx, endUserPrincipal(userID), itemID, entity.SetLiked)
	require.NoError(t, err)
	assert.False(t, result.Member)
	assert.Equal(t, int64(5), result.LikeCount)
}

func TestInteractionService_Toggle_SaveSkipsCounter(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	item := &entity.FoodItem{ID: itemID, LikeCount: 9}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(item, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.membershipRepo.EXPECT().Contains(ctx, userID, itemID, entity.SetSaved).Return(false, nil)
	fx.membershipRepo.EXPECT().AddMember(ctx, userID, itemID, entity.SetSaved).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	result, err := fx.service.Toggle(ctx, endUserPrincipal(userID), itemID, entity.SetSaved)
	require.NoError(t, err)
	assert.True(t, result.Member)
	assert.Equal(t, int64(9), result.LikeCount)
}

func TestInteractionService_Toggle_CounterFailureStillSucceeds(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	item := &entity.FoodItem{ID: itemID, LikeCount: 3}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(item, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.membershipRepo.EXPECT().Contains(ctx, userID, itemID, entity.SetLiked).Return(false, nil)
	fx.membershipRepo.EXPECT().AddMember(ctx, userID, itemID, entity.SetLiked).Return(nil)
	fx.itemRepo.EXPECT().AdjustLikeCount(ctx, itemID, int64(1)).Return(int64(0), errors.New("counter write timed out"))
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	result, err := fx.service.Toggle(ctx, endUserPrincipal(userID), itemID, entity.SetLiked)
	require.NoError(t, err)
	assert.True(t, result.Member)
	// The membership write stands; the counter is reported stale.
	assert.Equal(t, int64(3), result.LikeCount)
}

func TestInteractionService_Toggle_MembershipWriteFails(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.FoodItem{ID: itemID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.membershipRepo.EXPECT().Contains(ctx, userID, itemID, entity.SetLiked).Return(false, nil)
	fx.membershipRepo.EXPECT().AddMember(ctx, userID, itemID, entity.SetLiked).Return(errors.New("db error"))

	result, err := fx.service.Toggle(ctx, endUserPrincipal(userID), itemID, entity.SetLiked)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestInteractionService_Toggle_ItemNotFound(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	result, err := fx.service.Toggle(ctx, endUserPrincipal(userID), itemID, entity.SetLiked)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestInteractionService_Toggle_UserGone(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.FoodItem{ID: itemID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.Toggle(ctx, endUserPrincipal(userID), itemID, entity.SetLiked)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestInteractionService_Toggle_PartnerForbidden(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()

	result, err := fx.service.Toggle(ctx, partnerPrincipal(uuid.New()), uuid.New(), entity.SetLiked)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInteractionService_Toggle_UnknownSet(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()

	result, err := fx.service.Toggle(ctx, endUserPrincipal(uuid.New()), uuid.New(), entity.MembershipSet("starred"))
	assert.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestInteractionService_Share_Success(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().IncrementShareCount(ctx, itemID).Return(int64(12), nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	total, err := fx.service.Share(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
}

func TestInteractionService_Share_ItemNotFound(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().IncrementShareCount(ctx, itemID).Return(int64(0), repository.ErrItemNotFound)

	total, err := fx.service.Share(ctx, itemID)
	assert.Error(t, err)
	assert.Zero(t, total)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestInteractionService_Share_PublishFailureIgnored(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().IncrementShareCount(ctx, itemID).Return(int64(1), nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(errors.New("broker down"))

	total, err := fx.service.Share(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestInteractionService_GetInteractions_Success(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()

	likedIDs := []uuid.UUID{uuid.New(), uuid.New()}
	savedIDs := []uuid.UUID{uuid.New()}
	likedItems := []*entity.FoodItem{{ID: likedIDs[0]}, {ID: likedIDs[1]}}
	savedItems := []*entity.FoodItem{{ID: savedIDs[0]}}

	fx.membershipRepo.EXPECT().ListMembers(ctx, userID, entity.SetLiked).Return(likedIDs, nil)
	fx.itemRepo.EXPECT().FindByIDs(ctx, likedIDs).Return(likedItems, nil)
	fx.membershipRepo.EXPECT().ListMembers(ctx, userID, entity.SetSaved).Return(savedIDs, nil)
	fx.itemRepo.EXPECT().FindByIDs(ctx, savedIDs).Return(savedItems, nil)

	output, err := fx.service.GetInteractions(ctx, endUserPrincipal(userID))
	require.NoError(t, err)
	assert.Equal(t, likedItems, output.LikedItems)
	assert.Equal(t, savedItems, output.SavedItems)
	assert.Equal(t, 2, output.TotalLiked)
	assert.Equal(t, 1, output.TotalSaved)
}

func TestInteractionService_GetInteractions_PartnerForbidden(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()

	output, err := fx.service.GetInteractions(ctx, partnerPrincipal(uuid.New()))
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInteractionService_GetInteractions_ListError(t *testing.T) {
	fx := createTestInteractionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.membershipRepo.EXPECT().ListMembers(ctx, userID, entity.SetLiked).Return(nil, errors.New("db error"))

	output, err := fx.service.GetInteractions(ctx, endUserPrincipal(userID))
	assert.Error(t, err)
	assert.Nil(t, output)
}
