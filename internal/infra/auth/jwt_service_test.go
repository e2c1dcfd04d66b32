package auth

import (
	"testing"
	"time"

	"bitefeed/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	subjectID := uuid.New()

	token, err := jwtService.GenerateToken(subjectID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	other := &config.Config{}
	other.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(other)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New())
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Forge an already expired token signed with the same secret.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
		"type": "access",
	})
	tokenString, err := expired.SignedString([]byte(cfg.SecretKey.Access))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongTokenType(t *testing.T) {
	cfg := testConfig()
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	now := time.Now()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
		"type": "refresh",
	})
	tokenString, err := refresh.SignedString([]byte(cfg.SecretKey.Access))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
