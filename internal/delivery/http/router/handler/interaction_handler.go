package handler

import (
	"net/http"
	"strconv"

	"bitefeed/internal/delivery/http/middleware"
	"bitefeed/internal/delivery/http/response"
	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InteractionHandler holds dependencies for like/save/share/comment handlers.
type InteractionHandler struct {
	interactionUC usecase.InteractionUsecase
	commentUC     usecase.CommentUsecase
}

// NewInteractionHandler is the constructor for InteractionHandler, injected by Fx.
func NewInteractionHandler(interactionUC usecase.InteractionUsecase, commentUC usecase.CommentUsecase) *InteractionHandler {
	return &InteractionHandler{
		interactionUC: interactionUC,
		commentUC:     commentUC,
	}
}

// ToggleLike flips the item's membership in the acting user's liked set.
func (h *InteractionHandler) ToggleLike(c echo.Context) error {
	return h.toggle(c, entity.SetLiked)
}

// ToggleSave flips the item's membership in the acting user's saved set.
func (h *InteractionHandler) ToggleSave(c echo.Context) error {
	return h.toggle(c, entity.SetSaved)
}

func (h *InteractionHandler) toggle(c echo.Context, set entity.MembershipSet) error {
	principal, err := principalFromContext(c)
	if err != nil {
		return err
	}

	itemID, err := itemIDFromPath(c)
	if err != nil {
		return err
	}

	result, err := h.interactionUC.Toggle(c.Request().Context(), principal, itemID, set)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Toggled "+set.String())
}

// Share increments the item's share counter.
func (h *InteractionHandler) Share(c echo.Context) error {
	itemID, err := itemIDFromPath(c)
	if err != nil {
		return err
	}

	shareCount, err := h.interactionUC.Share(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"share_count": shareCount}, "Share recorded")
}

// GetMyInteractions returns the acting user's liked and saved items.
func (h *InteractionHandler) GetMyInteractions(c echo.Context) error {
	principal, err := principalFromContext(c)
	if err != nil {
		return err
	}

	output, err := h.interactionUC.GetInteractions(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Interactions retrieved")
}

// commentInput is the body for comment creation.
type commentInput struct {
	Text string `json:"text"`
}

// AddComment appends a comment to the item's log.
func (h *InteractionHandler) AddComment(c echo.Context) error {
	principal, err := principalFromContext(c)
	if err != nil {
		return err
	}

	itemID, err := itemIDFromPath(c)
	if err != nil {
		return err
	}

	var input commentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	output, err := h.commentUC.AddComment(c.Request().Context(), principal, itemID, input.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Comment added")
}

// ListComments returns one page of the item's comment log, newest first.
func (h *InteractionHandler) ListComments(c echo.Context) error {
	itemID, err := itemIDFromPath(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	output, err := h.commentUC.ListComments(c.Request().Context(), itemID, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Comments retrieved")
}

// principalFromContext reads the principal set by the auth middleware.
func principalFromContext(c echo.Context) (*entity.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalContextKey).(*entity.Principal)
	if !ok || principal == nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("principal missing from request context")
	}

	return principal, nil
}

func itemIDFromPath(c echo.Context) (uuid.UUID, error) {
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("itemID must be a valid UUID")
	}

	return itemID, nil
}
