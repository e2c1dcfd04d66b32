package impl

import (
	"context"
	"strings"
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

type subscriptionFixture struct {
	service          usecase.SubscriptionUsecase
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	userRepo         *mockRepo.MockUserRepository
	blobStore        *mockSvc.MockBlobStore
	qrService        *mockSvc.MockPaymentQRService
	publisher        *mockSvc.MockEventPublisher
}

func createTestSubscriptionService(t *testing.T) *subscriptionFixture {
	fx := &subscriptionFixture{
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		blobStore:        mockSvc.NewMockBlobStore(t),
		qrService:        mockSvc.NewMockPaymentQRService(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewSubscriptionService(
		fx.subscriptionRepo,
		fx.userRepo,
		fx.blobStore,
		fx.qrService,
		fx.publisher,
		newSubscriptionTestConfig(),
		newDiscardLogger(),
	)

	return fx
}

func TestSubscriptionService_Submit_Success(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	proof := []byte("png bytes")

	fx.subscriptionRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	fx.blobStore.EXPECT().
		Upload(ctx, proof, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, data []byte, name string) {
			assert.True(t, strings.HasPrefix(name, "payment_"))
		}).
		Return("https://cdn.example.com/uploads/payment_abc", nil)

	fx.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SubscriptionRequest")).
		Return(nil)

	fx.userRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, userID, entity.SubscriptionPending).
		Return(nil)

	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	request, err := fx.service.Submit(ctx, endUserPrincipal(userID), "  UTR123456  ", proof)
	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, userID, request.UserID)
	assert.Equal(t, entity.SubscriptionPending, request.Status)
	assert.Equal(t, "UTR123456", request.ReferenceCode)
	assert.Equal(t, "https://cdn.example.com/uploads/payment_abc", request.ProofURL)
	assert.Equal(t, 99.0, request.Amount)
}

func TestSubscriptionService_Submit_EmptyReferenceCode(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	request, err := fx.service.Submit(ctx, endUserPrincipal(uuid.New()), "   ", []byte("png"))
	assert.Error(t, err)
	assert.Nil(t, request)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSubscriptionService_Submit_MissingProof(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	request, err := fx.service.Submit(ctx, endUserPrincipal(uuid.New()), "UTR123456", nil)
	assert.Error(t, err)
	assert.Nil(t, request)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSubscriptionService_Submit_PartnerForbidden(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	request, err := fx.service.Submit(ctx, partnerPrincipal(uuid.New()), "UTR123456", []byte("png"))
	assert.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSubscriptionService_Submit_PendingRequestExists(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(&entity.SubscriptionRequest{UserID: userID, Status: entity.SubscriptionPending}, nil)

	request, err := fx.service.Submit(ctx, endUserPrincipal(userID), "UTR123456", []byte("png"))
	assert.Error(t, err)
	assert.Nil(t, request)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_PENDING_REQUEST", appErr.ErrorCode())
}

func TestSubscriptionService_Submit_AlreadyApproved(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(&entity.SubscriptionRequest{UserID: userID, Status: entity.SubscriptionApproved}, nil)

	request, err := fx.service.Submit(ctx, endUserPrincipal(userID), "UTR123456", []byte("png"))
	assert.Error(t, err)
	assert.Nil(t, request)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_PENDING_REQUEST", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "active subscription")
}

func TestSubscriptionService_Submit_UploadFailure(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	proof := []byte("png bytes")

	fx.subscriptionRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	fx.blobStore.EXPECT().
		Upload(ctx, proof, mock.AnythingOfType("string")).
		Return("", errors.New("bucket unavailable"))

	// No Create expectation: a failed upload must not leave a request record.
	request, err := fx.service.Submit(ctx, endUserPrincipal(userID), "UTR123456", proof)
	assert.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestSubscriptionService_Submit_CreateRace(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	proof := []byte("png bytes")

	fx.subscriptionRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	fx.blobStore.EXPECT().
		Upload(ctx, proof, mock.AnythingOfType("string")).
		Return("https://cdn.example.com/uploads/payment_abc", nil)

	fx.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SubscriptionRequest")).
		Return(repository.ErrDuplicateActiveSubscription)

	request, err := fx.service.Submit(ctx, endUserPrincipal(userID), "UTR123456", proof)
	assert.Error(t, err)
	assert.Nil(t, request)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_PENDING_REQUEST", appErr.ErrorCode())
}

func TestSubscriptionService_Submit_ProjectionFailureStillSucceeds(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	proof := []byte("png bytes")

	fx.subscriptionRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	fx.blobStore.EXPECT().
		Upload(ctx, proof, mock.AnythingOfType("string")).
		Return("https://cdn.example.com/uploads/payment_abc", nil)

	fx.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SubscriptionRequest")).
		Return(nil)

	fx.userRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, userID, entity.SubscriptionPending).
		Return(errors.New("projection write failed"))

	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	request, err := fx.service.Submit(ctx, endUserPrincipal(userID), "UTR123456", proof)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionPending, request.Status)
}

func TestSubscriptionService_GetStatus_NoHistory(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	output, err := fx.service.GetStatus(ctx, endUserPrincipal(userID))
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionNone, output.Status)
	assert.Nil(t, output.Request)
}

func TestSubscriptionService_GetStatus_LatestRequest(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	latest := &entity.SubscriptionRequest{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubscriptionRejected,
	}

	fx.subscriptionRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(latest, nil)

	output, err := fx.service.GetStatus(ctx, endUserPrincipal(userID))
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionRejected, output.Status)
	assert.Equal(t, latest, output.Request)
}

func TestSubscriptionService_GetStatus_PartnerForbidden(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	output, err := fx.service.GetStatus(ctx, partnerPrincipal(uuid.New()))
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSubscriptionService_ListPending(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	pending := []*entity.SubscriptionRequest{
		{ID: uuid.New(), Status: entity.SubscriptionPending},
	}

	fx.subscriptionRepo.EXPECT().
		ListByStatus(ctx, entity.SubscriptionPending).
		Return(pending, nil)

	requests, err := fx.service.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, pending, requests)
}

func TestSubscriptionService_ListAll(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	all := []*entity.SubscriptionRequest{
		{ID: uuid.New(), Status: entity.SubscriptionApproved},
		{ID: uuid.New(), Status: entity.SubscriptionRejected},
	}

	fx.subscriptionRepo.EXPECT().ListAll(ctx).Return(all, nil)

	requests, err := fx.service.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, requests)
}

func TestSubscriptionService_Approve_Success(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	requestID := uuid.New()
	userID := uuid.New()
	reviewerID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.SubscriptionRequest{ID: requestID, UserID: userID, Status: entity.SubscriptionPending}, nil)

	fx.subscriptionRepo.EXPECT().
		UpdateReview(ctx, requestID, entity.SubscriptionApproved, mock.AnythingOfType("*uuid.UUID"), "").
		Return(nil)

	fx.userRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, userID, entity.SubscriptionApproved).
		Return(nil)

	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	request, err := fx.service.Approve(ctx, requestID, partnerPrincipal(reviewerID))
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionApproved, request.Status)
	require.NotNil(t, request.ReviewedBy)
	assert.Equal(t, reviewerID, *request.ReviewedBy)
}

func TestSubscriptionService_Approve_AlreadyApproved(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	requestID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.SubscriptionRequest{ID: requestID, Status: entity.SubscriptionApproved}, nil)

	request, err := fx.service.Approve(ctx, requestID, partnerPrincipal(uuid.New()))
	assert.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyApproved))
}

func TestSubscriptionService_Approve_EndUserForbidden(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	request, err := fx.service.Approve(ctx, uuid.New(), endUserPrincipal(uuid.New()))
	assert.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSubscriptionService_Approve_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	requestID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(nil, repository.ErrSubscriptionNotFound)

	request, err := fx.service.Approve(ctx, requestID, partnerPrincipal(uuid.New()))
	assert.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))
}

func TestSubscriptionService_Reject_DefaultReason(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	requestID := uuid.New()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.SubscriptionRequest{ID: requestID, UserID: userID, Status: entity.SubscriptionPending}, nil)

	fx.subscriptionRepo.EXPECT().
		UpdateReview(ctx, requestID, entity.SubscriptionRejected, (*uuid.UUID)(nil), defaultRejectionReason).
		Return(nil)

	fx.userRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, userID, entity.SubscriptionRejected).
		Return(nil)

	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	request, err := fx.service.Reject(ctx, requestID, "   ")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionRejected, request.Status)
	assert.Equal(t, defaultRejectionReason, request.RejectionReason)
}

func TestSubscriptionService_Reject_CustomReason(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	requestID := uuid.New()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.SubscriptionRequest{ID: requestID, UserID: userID, Status: entity.SubscriptionPending}, nil)

	fx.subscriptionRepo.EXPECT().
		UpdateReview(ctx, requestID, entity.SubscriptionRejected, (*uuid.UUID)(nil), "UTR does not match any transfer").
		Return(nil)

	fx.userRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, userID, entity.SubscriptionRejected).
		Return(nil)

	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	request, err := fx.service.Reject(ctx, requestID, "UTR does not match any transfer")
	require.NoError(t, err)
	assert.Equal(t, "UTR does not match any transfer", request.RejectionReason)
}

func TestSubscriptionService_Reject_AfterApprove(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	requestID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.SubscriptionRequest{ID: requestID, Status: entity.SubscriptionApproved}, nil)

	request, err := fx.service.Reject(ctx, requestID, "too late")
	assert.Error(t, err)
	assert.Nil(t, request)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestSubscriptionService_Reject_RejectedAgain(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	requestID := uuid.New()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.SubscriptionRequest{ID: requestID, UserID: userID, Status: entity.SubscriptionRejected}, nil)

	fx.subscriptionRepo.EXPECT().
		UpdateReview(ctx, requestID, entity.SubscriptionRejected, (*uuid.UUID)(nil), "still unverifiable").
		Return(nil)

	fx.userRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, userID, entity.SubscriptionRejected).
		Return(nil)

	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	request, err := fx.service.Reject(ctx, requestID, "still unverifiable")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionRejected, request.Status)
}

func TestSubscriptionService_PaymentQR_Success(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	expected := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.qrService.EXPECT().
		GeneratePaymentQR("bitefeed@upi", "BiteFeed", 99.0).
		Return(expected, nil)

	png, err := fx.service.PaymentQR(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, png)
}

func TestSubscriptionService_PaymentQR_Error(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	fx.qrService.EXPECT().
		GeneratePaymentQR("bitefeed@upi", "BiteFeed", 99.0).
		Return(nil, errors.New("encode failed"))

	png, err := fx.service.PaymentQR(ctx)
	assert.Error(t, err)
	assert.Nil(t, png)
}
