package impl

import (
	"context"
	"testing"

	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/domain/service"
	mockRepo "bitefeed/internal/mocks/repository"
	mockSvc "bitefeed/internal/mocks/service"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityFixture struct {
	service     usecase.IdentityUsecase
	tokenSvc    *mockSvc.MockTokenService
	userRepo    *mockRepo.MockUserRepository
	partnerRepo *mockRepo.MockPartnerRepository
}

func createTestIdentityService(t *testing.T) *identityFixture {
	fx := &identityFixture{
		tokenSvc:    mockSvc.NewMockTokenService(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		partnerRepo: mockRepo.NewMockPartnerRepository(t),
	}
	fx.service = NewIdentityService(fx.tokenSvc, fx.userRepo, fx.partnerRepo, newDiscardLogger())

	return fx
}

func TestIdentityService_ResolveEndUser_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Alice"}

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{SubjectID: userID, Type: "access"}, nil)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	principal, err := fx.service.ResolveEndUser(ctx, "valid-token")
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalEndUser, principal.Kind)
	assert.Equal(t, userID, principal.ID)
	assert.Equal(t, "Alice", principal.Label)
}

func TestIdentityService_ResolveEndUser_EmptyToken(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	principal, err := fx.service.ResolveEndUser(ctx, "")
	assert.Error(t, err)
	assert.Nil(t, principal)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestIdentityService_ResolveEndUser_InvalidToken(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.tokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	principal, err := fx.service.ResolveEndUser(ctx, "garbage")
	assert.Error(t, err)
	assert.Nil(t, principal)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestIdentityService_ResolveEndUser_UserGone(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{SubjectID: userID, Type: "access"}, nil)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	principal, err := fx.service.ResolveEndUser(ctx, "valid-token")
	assert.Error(t, err)
	assert.Nil(t, principal)
	assert.True(t, errors.Is(err, domainerrors.ErrPrincipalNotFound))
}

func TestIdentityService_ResolvePartner_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	partner := &entity.FoodPartner{ID: partnerID, Name: "Spice Garden"}

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{SubjectID: partnerID, Type: "access"}, nil)

	fx.partnerRepo.EXPECT().FindByID(ctx, partnerID).Return(partner, nil)

	principal, err := fx.service.ResolvePartner(ctx, "valid-token")
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalPartner, principal.Kind)
	assert.Equal(t, partnerID, principal.ID)
	assert.Equal(t, "Spice Garden", principal.Label)
}

func TestIdentityService_ResolvePartner_PartnerGone(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	partnerID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{SubjectID: partnerID, Type: "access"}, nil)

	fx.partnerRepo.EXPECT().FindByID(ctx, partnerID).Return(nil, repository.ErrPartnerNotFound)

	principal, err := fx.service.ResolvePartner(ctx, "valid-token")
	assert.Error(t, err)
	assert.Nil(t, principal)
	assert.True(t, errors.Is(err, domainerrors.ErrPrincipalNotFound))
}

// A user token presented to the partner resolver resolves against the partner
// table and is rejected there, never silently downgraded.
func TestIdentityService_ResolvePartner_UserTokenRejected(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateToken("user-token").
		Return(&service.Claims{SubjectID: userID, Type: "access"}, nil)

	fx.partnerRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrPartnerNotFound)

	principal, err := fx.service.ResolvePartner(ctx, "user-token")
	assert.Error(t, err)
	assert.Nil(t, principal)
	assert.True(t, errors.Is(err, domainerrors.ErrPrincipalNotFound))
}
