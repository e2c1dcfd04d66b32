// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"bitefeed/internal/delivery/http/response"
	"bitefeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// authTokenCookieName is the cookie browser clients authenticate with.
const authTokenCookieName = "token"

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	uc usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{
		uc: uc,
	}
}

// RegisterUser handles the end-user registration request.
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// LoginUser handles the end-user login request.
func (h *AuthHandler) LoginUser(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.LoginUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenCookie(c, output.Token)

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RegisterPartner handles the food-partner registration request.
func (h *AuthHandler) RegisterPartner(c echo.Context) error {
	var input *usecase.RegisterPartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterPartner(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, output, "Partner registered successfully")
}

// LoginPartner handles the food-partner login request.
func (h *AuthHandler) LoginPartner(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.LoginPartner(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenCookie(c, output.Token)

	return response.Success(c, http.StatusOK, output, "Login successful")
}

func setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     authTokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
