package usecase

import (
	"context"

	"bitefeed/internal/domain/entity"
)

// RegisterUserInput is the payload for end-user registration.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterPartnerInput is the payload for food-partner registration.
type RegisterPartnerInput struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contact_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

// LoginInput is the payload for both login variants.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput carries the issued token and the public identity of the account.
type AuthOutput struct {
	Token string               `json:"token"`
	ID    string               `json:"id"`
	Name  string               `json:"name"`
	Email string               `json:"email"`
	Kind  entity.PrincipalKind `json:"kind"`
}

// UserUsecase covers account registration and login for both principal kinds,
// issuing tokens under the single shared credential scheme.
type UserUsecase interface {
	// RegisterUser creates an end-user account with a hashed password.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)

	// LoginUser verifies end-user credentials and issues an access token.
	LoginUser(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// RegisterPartner creates a food-partner account with a hashed password.
	RegisterPartner(ctx context.Context, input *RegisterPartnerInput) (*AuthOutput, error)

	// LoginPartner verifies partner credentials and issues an access token.
	LoginPartner(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
