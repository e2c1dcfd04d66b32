package handler

import (
	"io"
	"net/http"

	"bitefeed/internal/delivery/http/response"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxScreenshotSize bounds the uploaded payment screenshot (5 MiB).
const maxScreenshotSize = 5 << 20

// SubscriptionHandler holds dependencies for subscription request handlers.
type SubscriptionHandler struct {
	uc usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc: uc,
	}
}

// Submit handles the multipart subscription request submission: a UTR
// reference code plus the payment screenshot.
func (h *SubscriptionHandler) Submit(c echo.Context) error {
	principal, err := principalFromContext(c)
	if err != nil {
		return err
	}

	utrCode := c.FormValue("utrCode")

	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("payment screenshot is required")
	}
	if fileHeader.Size > maxScreenshotSize {
		return domainerrors.ErrValidationFailed.WithDetails("payment screenshot exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded screenshot")
	}
	defer file.Close()

	proof, err := io.ReadAll(io.LimitReader(file, maxScreenshotSize))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded screenshot")
	}

	request, err := h.uc.Submit(c.Request().Context(), principal, utrCode, proof)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Subscription request submitted")
}

// GetStatus returns the acting user's subscription status.
func (h *SubscriptionHandler) GetStatus(c echo.Context) error {
	principal, err := principalFromContext(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetStatus(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Subscription status retrieved")
}

// PaymentQR streams the UPI payment QR as a PNG image.
func (h *SubscriptionHandler) PaymentQR(c echo.Context) error {
	png, err := h.uc.PaymentQR(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListPending returns all requests awaiting review.
func (h *SubscriptionHandler) ListPending(c echo.Context) error {
	requests, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Pending subscription requests retrieved")
}

// ListAll returns every request regardless of state.
func (h *SubscriptionHandler) ListAll(c echo.Context) error {
	requests, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Subscription requests retrieved")
}

// Approve marks the request approved by the reviewing partner.
func (h *SubscriptionHandler) Approve(c echo.Context) error {
	reviewer, err := principalFromContext(c)
	if err != nil {
		return err
	}

	requestID, err := requestIDFromPath(c)
	if err != nil {
		return err
	}

	request, err := h.uc.Approve(c.Request().Context(), requestID, reviewer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Subscription request approved")
}

// rejectInput is the body for a rejection.
type rejectInput struct {
	Reason string `json:"reason"`
}

// Reject marks the request rejected with the supplied reason.
func (h *SubscriptionHandler) Reject(c echo.Context) error {
	requestID, err := requestIDFromPath(c)
	if err != nil {
		return err
	}

	var input rejectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	request, err := h.uc.Reject(c.Request().Context(), requestID, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Subscription request rejected")
}

func requestIDFromPath(c echo.Context) (uuid.UUID, error) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return requestID, nil
}
