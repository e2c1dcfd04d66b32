// Package usecase defines the application-facing interfaces and DTOs for the
// business operations. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"bitefeed/internal/domain/entity"
)

// IdentityUsecase resolves a bearer credential to exactly one of the two
// mutually exclusive principal kinds. Each endpoint group declares which kind
// it expects by calling the matching resolver; the two are never mixed in one
// request. Resolution is read-only.
type IdentityUsecase interface {
	// ResolveEndUser verifies the credential and looks the subject up in the
	// end-user table. Fails with UNAUTHENTICATED when the credential is
	// absent, malformed or fails the signature check, and with
	// PRINCIPAL_NOT_FOUND when the account no longer exists.
	ResolveEndUser(ctx context.Context, token string) (*entity.Principal, error)

	// ResolvePartner is the food-partner counterpart of ResolveEndUser.
	ResolvePartner(ctx context.Context, token string) (*entity.Principal, error)
}
