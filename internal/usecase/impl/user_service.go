package impl

import (
	"context"
	"log/slog"
	"strings"

	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface: registration and login
// for both principal kinds under the shared token scheme.
type userService struct {
	userRepo    repository.UserRepository
	partnerRepo repository.PartnerRepository
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
	logger      *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	partnerRepo repository.PartnerRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
		logger:      logger,
	}
}

// RegisterUser creates an end-user account.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for an existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:                 uuid.New(),
		Name:               input.Name,
		Email:              email,
		PasswordHash:       hash,
		SubscriptionStatus: entity.SubscriptionNone,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("registered end user", "userID", user.ID)

	return srv.issueToken(user.ID, user.Name, user.Email, entity.PrincipalEndUser)
}

// LoginUser verifies end-user credentials and issues a token.
func (srv *userService) LoginUser(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.issueToken(user.ID, user.Name, user.Email, entity.PrincipalEndUser)
}

// RegisterPartner creates a food-partner account.
func (srv *userService) RegisterPartner(ctx context.Context, input *usecase.RegisterPartnerInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if _, err := srv.partnerRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered as a partner")
	} else if !errors.Is(err, repository.ErrPartnerNotFound) {
		return nil, errors.Wrap(err, "failed to check for an existing partner")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	partner := &entity.FoodPartner{
		ID:           uuid.New(),
		Name:         input.Name,
		ContactName:  input.ContactName,
		Phone:        input.Phone,
		Address:      input.Address,
		Email:        email,
		PasswordHash: hash,
	}

	if err := srv.partnerRepo.Create(ctx, partner); err != nil {
		if errors.Is(err, repository.ErrDuplicatePartner) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered as a partner")
		}

		return nil, errors.Wrap(err, "failed to create partner")
	}

	srv.logger.Info("registered food partner", "partnerID", partner.ID)

	return srv.issueToken(partner.ID, partner.Name, partner.Email, entity.PrincipalPartner)
}

// LoginPartner verifies partner credentials and issues a token.
func (srv *userService) LoginPartner(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	partner, err := srv.partnerRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find partner by email")
	}

	if !srv.hasher.Check(input.Password, partner.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.issueToken(partner.ID, partner.Name, partner.Email, entity.PrincipalPartner)
}

func (srv *userService) issueToken(id uuid.UUID, name, email string, kind entity.PrincipalKind) (*usecase.AuthOutput, error) {
	token, err := srv.tokenSvc.GenerateToken(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		Token: token,
		ID:    id.String(),
		Name:  name,
		Email: email,
		Kind:  kind,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
