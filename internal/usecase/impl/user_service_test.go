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

type userFixture struct {
	service     usecase.UserUsecase
	userRepo    *mockRepo.MockUserRepository
	partnerRepo *mockRepo.MockPartnerRepository
	hasher      *mockSvc.MockPasswordHasher
	tokenSvc    *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) *userFixture {
	fx := &userFixture{
		userRepo:    mockRepo.NewMockUserRepository(t),
		partnerRepo: mockRepo.NewMockPartnerRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokenSvc:    mockSvc.NewMockTokenService(t),
	}
	fx.service = NewUserService(fx.userRepo, fx.partnerRepo, fx.hasher, fx.tokenSvc, newDiscardLogger())

	return fx
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, entity.SubscriptionNone, user.SubscriptionStatus)
		}).
		Return(nil)

	fx.tokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID")).
		Return("signed-token", nil)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "  Alice@Example.com  ",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "Alice", output.Name)
	assert.Equal(t, "alice@example.com", output.Email)
	assert.Equal(t, entity.PrincipalEndUser, output.Kind)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com"}, nil)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_DuplicateRace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_LoginUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Alice", Email: "alice@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret-password", "hashed").Return(true)
	fx.tokenSvc.EXPECT().GenerateToken(userID).Return("signed-token", nil)

	output, err := fx.service.LoginUser(ctx, &usecase.LoginInput{
		Email:    "Alice@Example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID.String(), output.ID)
	assert.Equal(t, entity.PrincipalEndUser, output.Kind)
}

func TestUserService_LoginUser_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", "hashed").Return(false)

	output, err := fx.service.LoginUser(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_LoginUser_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.LoginUser(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RegisterPartner_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.partnerRepo.EXPECT().
		FindByEmail(ctx, "spice@example.com").
		Return(nil, repository.ErrPartnerNotFound)

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)

	fx.partnerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodPartner")).
		Run(func(ctx context.Context, partner *entity.FoodPartner) {
			assert.Equal(t, "spice@example.com", partner.Email)
			assert.Equal(t, "hashed", partner.PasswordHash)
		}).
		Return(nil)

	fx.tokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID")).
		Return("signed-token", nil)

	output, err := fx.service.RegisterPartner(ctx, &usecase.RegisterPartnerInput{
		Name:        "Spice Garden",
		ContactName: "Ravi",
		Phone:       "+911234567890",
		Address:     "12 Curry Lane",
		Email:       "Spice@Example.com",
		Password:    "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalPartner, output.Kind)
	assert.Equal(t, "Spice Garden", output.Name)
}

func TestUserService_RegisterPartner_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.partnerRepo.EXPECT().
		FindByEmail(ctx, "spice@example.com").
		Return(&entity.FoodPartner{ID: uuid.New(), Email: "spice@example.com"}, nil)

	output, err := fx.service.RegisterPartner(ctx, &usecase.RegisterPartnerInput{
		Name:        "Spice Garden",
		ContactName: "Ravi",
		Phone:       "+911234567890",
		Address:     "12 Curry Lane",
		Email:       "spice@example.com",
		Password:    "secret-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_LoginPartner_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	partner := &entity.FoodPartner{ID: partnerID, Name: "Spice Garden", Email: "spice@example.com", PasswordHash: "hashed"}

	fx.partnerRepo.EXPECT().FindByEmail(ctx, "spice@example.com").Return(partner, nil)
	fx.hasher.EXPECT().Check("secret-password", "hashed").Return(true)
	fx.tokenSvc.EXPECT().GenerateToken(partnerID).Return("signed-token", nil)

	output, err := fx.service.LoginPartner(ctx, &usecase.LoginInput{
		Email:    "spice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalPartner, output.Kind)
}

func TestUserService_LoginPartner_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	partner := &entity.FoodPartner{ID: uuid.New(), Email: "spice@example.com", PasswordHash: "hashed"}

	fx.partnerRepo.EXPECT().FindByEmail(ctx, "spice@example.com").Return(partner, nil)
	fx.hasher.EXPECT().Check("wrong-password", "hashed").Return(false)

	output, err := fx.service.LoginPartner(ctx, &usecase.LoginInput{
		Email:    "spice@example.com",
		Password: "wrong-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RegisterUser_HashError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash("secret-password").Return("", errors.New("bcrypt failure"))

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
}
