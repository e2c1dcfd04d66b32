package impl

import (
	"context"
	"testing"
	"time"

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

type commentFixture struct {
	service   usecase.CommentUsecase
	itemRepo  *mockRepo.MockItemRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestCommentService(t *testing.T) *commentFixture {
	fx := &commentFixture{
		itemRepo:  mockRepo.NewMockItemRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewCommentService(fx.itemRepo, fx.publisher, newDiscardLogger())

	return fx
}

func TestCommentService_AddComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.FoodItem{ID: itemID}, nil)

	fx.itemRepo.EXPECT().
		AppendComment(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = 7
			comment.CreatedAt = time.Now()
		}).
		Return(int64(7), nil)

	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	output, err := fx.service.AddComment(ctx, endUserPrincipal(userID), itemID, "  looks delicious  ")
	require.NoError(t, err)
	assert.Equal(t, "looks delicious", output.Comment.Text)
	assert.Equal(t, userID, output.Comment.AuthorID)
	assert.Equal(t, "Test User", output.Comment.AuthorLabel)
	assert.Equal(t, int64(7), output.Comment.ID)
	assert.Equal(t, int64(7), output.TotalComments)
}

func TestCommentService_AddComment_EmptyText(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()

	output, err := fx.service.AddComment(ctx, endUserPrincipal(uuid.New()), uuid.New(), "   ")
	assert.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCommentService_AddComment_ItemNotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	output, err := fx.service.AddComment(ctx, endUserPrincipal(uuid.New()), itemID, "nice")
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestCommentService_AddComment_AppendError(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.FoodItem{ID: itemID}, nil)
	fx.itemRepo.EXPECT().
		AppendComment(ctx, mock.AnythingOfType("*entity.Comment")).
		Return(int64(0), errors.New("db error"))

	output, err := fx.service.AddComment(ctx, endUserPrincipal(uuid.New()), itemID, "nice")
	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestCommentService_ListComments_DefaultsApplied(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	itemID := uuid.New()
	comments := []*entity.Comment{{ID: 45, ItemID: itemID, Text: "newest"}}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.FoodItem{ID: itemID}, nil)
	fx.itemRepo.EXPECT().ListComments(ctx, itemID, 0, 20).Return(comments, int64(45), nil)

	page, err := fx.service.ListComments(ctx, itemID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 20, page.ItemsPerPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(45), page.TotalComments)
	assert.Equal(t, comments, page.Comments)
}

func TestCommentService_ListComments_SecondPage(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.FoodItem{ID: itemID}, nil)
	fx.itemRepo.EXPECT().ListComments(ctx, itemID, 10, 10).Return([]*entity.Comment{}, int64(25), nil)

	page, err := fx.service.ListComments(ctx, itemID, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
}

func TestCommentService_ListComments_ItemNotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	page, err := fx.service.ListComments(ctx, itemID, 1, 10)
	assert.Error(t, err)
	assert.Nil(t, page)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}
