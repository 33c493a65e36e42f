package handler

import (
	"io"
	"net/http"

	"pairup/internal/delivery/http/middleware"
	"pairup/internal/delivery/http/response"
	"pairup/internal/domain/entity"
	"pairup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// Get returns the caller's profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	profile, err := h.profileUC.GetOwn(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profilePayload(profile), "")
}

type saveProfileRequest struct {
	Username            string   `json:"username" validate:"required"`
	DisplayName         string   `json:"displayName" validate:"required"`
	Bio                 string   `json:"bio"`
	BeveragePreferences []string `json:"beveragePreferences"`
	AlcoholToggle       string   `json:"alcoholToggle" validate:"required"`
	InstagramHandle     *string  `json:"instagramHandle"`
	TikTokHandle        *string  `json:"tiktokHandle"`
}

// Save upserts the caller's profile.
func (h *ProfileHandler) Save(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req saveProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileUC.Save(c.Request().Context(), userID, usecase.SaveProfileInput{
		Username:            req.Username,
		DisplayName:         req.DisplayName,
		Bio:                 req.Bio,
		BeveragePreferences: req.BeveragePreferences,
		AlcoholToggle:       req.AlcoholToggle,
		InstagramHandle:     req.InstagramHandle,
		TikTokHandle:        req.TikTokHandle,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profilePayload(profile), "Profile saved")
}

// UploadAvatar stores a new avatar image for the caller.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	data, contentType, filename, err := readMultipartImage(c, "avatar")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "avatar image is required")
	}

	url, err := h.profileUC.UploadAvatar(c.Request().Context(), userID, usecase.AvatarUploadInput{
		Data:        data,
		ContentType: contentType,
		Filename:    filename,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"avatarUrl": url}, "Avatar updated")
}

// readMultipartImage pulls one uploaded file out of the multipart form.
func readMultipartImage(c echo.Context, field string) (data []byte, contentType, filename string, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, "", "", err
	}

	contentType = fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return data, contentType, fileHeader.Filename, nil
}

func profilePayload(profile *entity.Profile) map[string]any {
	return map[string]any{
		"userId":              profile.UserID,
		"username":            profile.Username,
		"displayName":         profile.DisplayName,
		"bio":                 profile.Bio,
		"avatarUrl":           profile.AvatarURL,
		"beveragePreferences": profile.BeveragePreferences,
		"alcoholToggle":       profile.AlcoholToggle,
		"instagramHandle":     profile.InstagramHandle,
		"tiktokHandle":        profile.TikTokHandle,
	}
}
