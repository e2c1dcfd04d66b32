package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access tokens. The token carries
// only the subject id; whether the subject is an end user or a food partner is
// decided by which resolver the endpoint group invokes, never by the token.
type Claims struct {
	SubjectID uuid.UUID
	Type      string // Token type, currently always "access".
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given subject.
	GenerateToken(subjectID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// verified claims.
	ValidateToken(tokenString string) (*Claims, error)
}
