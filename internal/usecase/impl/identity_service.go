// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/usecase"

	"github.com/pkg/errors"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	tokenSvc    service.TokenService
	userRepo    repository.UserRepository
	partnerRepo repository.PartnerRepository
	logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	tokenSvc service.TokenService,
	userRepo repository.UserRepository,
	partnerRepo repository.PartnerRepository,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		tokenSvc:    tokenSvc,
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		logger:      logger,
	}
}

// ResolveEndUser verifies the credential and resolves it against the end-user table.
func (srv *identityService) ResolveEndUser(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := srv.verify(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrPrincipalNotFound.WrapMessage("end user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to look up end user")
	}

	return user.Principal(), nil
}

// ResolvePartner verifies the credential and resolves it against the partner table.
func (srv *identityService) ResolvePartner(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := srv.verify(token)
	if err != nil {
		return nil, err
	}

	partner, err := srv.partnerRepo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPrincipalNotFound.WrapMessage("food partner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to look up food partner")
	}

	return partner.Principal(), nil
}

// verify decodes and cryptographically checks the bearer credential.
func (srv *identityService) verify(token string) (*service.Claims, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing bearer token")
	}

	claims, err := srv.tokenSvc.ValidateToken(token)
	if err != nil {
		srv.logger.Debug("token validation failed", "error", err)

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
	}

	return claims, nil
}
