package handler

import (
	"net/http"

	"pairup/internal/delivery/http/middleware"
	"pairup/internal/delivery/http/response"
	"pairup/internal/domain/entity"
	"pairup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PairingHandler holds dependencies for pairing submission and read handlers.
type PairingHandler struct {
	pairingUC    usecase.PairingUsecase
	annotationUC usecase.AnnotationUsecase
}

// NewPairingHandler is the constructor for PairingHandler, injected by Fx.
func NewPairingHandler(pairingUC usecase.PairingUsecase, annotationUC usecase.AnnotationUsecase) *PairingHandler {
	return &PairingHandler{
		pairingUC:    pairingUC,
		annotationUC: annotationUC,
	}
}

// Analyze runs the AI annotation on an uploaded photo.
func (h *PairingHandler) Analyze(c echo.Context) error {
	data, contentType, _, err := readMultipartImage(c, "image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image is required")
	}

	annotation, err := h.annotationUC.Analyze(c.Request().Context(), usecase.AnalyzeImageInput{
		Data:        data,
		ContentType: contentType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"analysis": annotation}, "")
}

// Create publishes a new pairing from a multipart form.
func (h *PairingHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	data, contentType, filename, err := readMultipartImage(c, "image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image is required")
	}

	input := usecase.CreatePairingInput{
		ImageData:        data,
		ImageContentType: contentType,
		ImageFilename:    filename,
		FoodName:         c.FormValue("foodName"),
		BeverageTag:      c.FormValue("beverageTag"),
		Rating:           c.FormValue("rating"),
		FlavorPrinciple:  optionalFormValue(c, "flavorPrinciple"),
		ReviewText:       optionalFormValue(c, "reviewText"),
		BeverageBrand:    optionalFormValue(c, "beverageBrand"),
		FoodBrand:        optionalFormValue(c, "foodBrand"),
	}

	pairing, err := h.pairingUC.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"pairing": pairingPayload(pairing)}, "Pairing published")
}

// Feed lists pairings newest-first with optional filters.
func (h *PairingHandler) Feed(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	pairings, err := h.pairingUC.Feed(c.Request().Context(), userID, usecase.FeedFilter{
		Beverage:  c.QueryParam("beverage"),
		Principle: c.QueryParam("principle"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]map[string]any, 0, len(pairings))
	for _, pairing := range pairings {
		payload = append(payload, pairingPayload(pairing))
	}

	return response.Success(c, http.StatusOK, map[string]any{"pairings": payload}, "")
}

// Get returns one pairing with author, counts, and comments.
func (h *PairingHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	pairingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pairing ID")
	}

	detail, err := h.pairingUC.Get(c.Request().Context(), pairingID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	comments := make([]map[string]any, 0, len(detail.Comments))
	for _, comment := range detail.Comments {
		comments = append(comments, commentPayload(comment))
	}

	payload := pairingPayload(detail.Pairing)
	payload["comments"] = comments

	return response.Success(c, http.StatusOK, map[string]any{"pairing": payload}, "")
}

type realityScoreRequest struct {
	Score int `json:"score" validate:"required"`
}

// RateReality records the author's post-tasting score.
func (h *PairingHandler) RateReality(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	pairingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pairing ID")
	}

	var req realityScoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reality score input")
	}

	if err := h.pairingUC.RateReality(c.Request().Context(), userID, pairingID, req.Score); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"score": req.Score}, "Reality score saved")
}

func optionalFormValue(c echo.Context, field string) *string {
	value := c.FormValue(field)
	if value == "" {
		return nil
	}

	return &value
}

func pairingPayload(pairing *entity.Pairing) map[string]any {
	payload := map[string]any{
		"id":            pairing.ID,
		"userId":        pairing.UserID,
		"imageUrl":      pairing.ImageURL,
		"foodName":      pairing.FoodName,
		"beverageTag":   pairing.BeverageTag,
		"reviewText":    pairing.ReviewText,
		"beverageBrand": pairing.BeverageBrand,
		"foodBrand":     pairing.FoodBrand,
		"rating":        pairing.Rating,
		"realityScore":  pairing.RealityScore,
		"likeCount":     pairing.LikeCount,
		"commentCount":  pairing.CommentCount,
		"likedByViewer": pairing.LikedByViewer,
		"createdAt":     pairing.CreatedAt,
	}
	if pairing.FlavorPrinciple != nil {
		payload["flavorPrinciple"] = *pairing.FlavorPrinciple
	}
	if pairing.Author != nil {
		payload["author"] = map[string]any{
			"userId":      pairing.Author.UserID,
			"username":    pairing.Author.Username,
			"displayName": pairing.Author.DisplayName,
			"avatarUrl":   pairing.Author.AvatarURL,
		}
	}

	return payload
}

func commentPayload(comment *entity.Comment) map[string]any {
	payload := map[string]any{
		"id":        comment.ID,
		"userId":    comment.UserID,
		"content":   comment.Content,
		"createdAt": comment.CreatedAt,
	}
	if comment.Author != nil {
		payload["author"] = map[string]any{
			"userId":      comment.Author.UserID,
			"username":    comment.Author.Username,
			"displayName": comment.Author.DisplayName,
			"avatarUrl":   comment.Author.AvatarURL,
		}
	}

	return payload
}
