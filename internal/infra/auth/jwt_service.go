// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bitefeed/config"
	"bitefeed/internal/domain/service"
)

const accessTokenType = "access"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key shared by both principal kinds.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: time.Hour * 24 * 7,
	}, nil
}

// GenerateToken creates a signed access token for the given subject. The
// token carries only the subject id; which table the subject lives in is
// decided by the resolver that the endpoint group invokes.
func (s *jwtService) GenerateToken(subjectID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subjectID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
		"type": accessTokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	subject, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidSubject
	}

	subjectID, err := uuid.Parse(subject)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != accessTokenType {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &service.Claims{
		SubjectID: subjectID,
		Type:      tokenType,
	}, nil
}
