package middleware

import (
	"strings"

	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PrincipalContextKey is the echo context key the resolved principal is
// stored under.
const PrincipalContextKey = "principal"

// AuthMiddleware resolves the bearer credential to a principal. Which kind
// is expected is declared per endpoint group: user routes call
// AuthenticateUser, review routes call AuthenticatePartner. The same token
// can resolve differently depending on which table the subject id exists in.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUC usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identityUC: identityUC}
}

// AuthenticateUser resolves the credential against the end-user table.
func (m *AuthMiddleware) AuthenticateUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := extractToken(c)
		if err != nil {
			return err
		}

		principal, err := m.identityUC.ResolveEndUser(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(PrincipalContextKey, principal)

		return next(c)
	}
}

// AuthenticatePartner resolves the credential against the partner table.
func (m *AuthMiddleware) AuthenticatePartner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := extractToken(c)
		if err != nil {
			return err
		}

		principal, err := m.identityUC.ResolvePartner(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(PrincipalContextKey, principal)

		return next(c)
	}
}

// extractToken pulls the credential from the Authorization header or, for
// browser clients, the "token" cookie.
func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return "", domainerrors.ErrUnauthenticated.WithDetails("invalid token format, must be Bearer token")
		}

		return tokenString, nil
	}

	cookie, err := c.Cookie("token")
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", domainerrors.ErrUnauthenticated.WithDetails("credential is missing")
}
