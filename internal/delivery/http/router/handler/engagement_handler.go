package handler

import (
	"net/http"

	"pairup/internal/delivery/http/middleware"
	"pairup/internal/delivery/http/response"
	"pairup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EngagementHandler holds dependencies for like and comment handlers.
type EngagementHandler struct {
	engagementUC usecase.EngagementUsecase
}

// NewEngagementHandler is the constructor for EngagementHandler, injected by Fx.
func NewEngagementHandler(engagementUC usecase.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{engagementUC: engagementUC}
}

// ToggleLike flips the caller's like on a pairing. The response carries the
// authoritative state for optimistic-update reconciliation.
func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	pairingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pairing ID")
	}

	result, err := h.engagementUC.ToggleLike(c.Request().Context(), userID, pairingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"liked":     result.Liked,
		"likeCount": result.LikeCount,
	}, "")
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// AddComment appends a comment to a pairing.
func (h *EngagementHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	pairingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pairing ID")
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.engagementUC.AddComment(c.Request().Context(), userID, pairingID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"comment": commentPayload(comment)}, "Comment added")
}
