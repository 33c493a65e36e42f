package impl

import (
	"context"
	"log/slog"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	deliverycontext "pairup/internal/delivery/context"
	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/repository"
	"pairup/internal/domain/service"
	"pairup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	usernameMinLength    = 3
	usernameMaxLength    = 30
	displayNameMinLength = 2
	displayNameMaxLength = 50
	bioMaxLength         = 500
	instagramMaxLength   = 30
	tiktokMaxLength      = 24
)

var (
	usernamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	instagramPattern = regexp.MustCompile(`^[a-zA-Z0-9._]*$`)
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	storage     service.ObjectStorage
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Storage     service.ObjectStorage
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOwn returns the caller's profile.
func (srv *profileService) GetOwn(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// Save validates and upserts the caller's profile.
func (srv *profileService) Save(ctx context.Context, userID uuid.UUID, input usecase.SaveProfileInput) (*entity.Profile, error) {
	if err := validateProfileInput(&input); err != nil {
		return nil, err
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	profile := &entity.Profile{
		UserID:              userID,
		Username:            &username,
		DisplayName:         strings.TrimSpace(input.DisplayName),
		Bio:                 strings.TrimSpace(input.Bio),
		BeveragePreferences: input.BeveragePreferences,
		AlcoholToggle:       entity.AlcoholToggle(input.AlcoholToggle),
		InstagramHandle:     input.InstagramHandle,
		TikTokHandle:        input.TikTokHandle,
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, domainerrors.ErrUsernameTaken
		}

		srv.log(ctx).Error("Profile upsert failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile saved", slog.Any("userID", userID), slog.String("username", username))

	return profile, nil
}

// UploadAvatar stores the image and points the profile at its public URL.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, input usecase.AvatarUploadInput) (string, error) {
	if len(input.Data) == 0 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("avatar image is required")
	}

	key := "avatars/" + userID.String() + "/" +
		strconv.FormatInt(time.Now().UnixNano(), 10) + imageExtension(input.Filename, input.ContentType)

	url, err := srv.storage.Upload(ctx, key, input.Data, input.ContentType)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload avatar")
	}

	if err := srv.profileRepo.UpdateAvatarURL(ctx, userID, url); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return "", domainerrors.ErrProfileNotFound
		}

		return "", err
	}

	return url, nil
}

func validateProfileInput(input *usecase.SaveProfileInput) error {
	username := strings.TrimSpace(input.Username)
	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		return domainerrors.ErrValidationFailed.WrapMessage("username must be 3-30 characters")
	}
	if !usernamePattern.MatchString(username) {
		return domainerrors.ErrValidationFailed.WrapMessage("username may only contain letters, numbers, and underscores")
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if len(displayName) < displayNameMinLength || len(displayName) > displayNameMaxLength {
		return domainerrors.ErrValidationFailed.WrapMessage("display name must be 2-50 characters")
	}

	if len(input.Bio) > bioMaxLength {
		return domainerrors.ErrValidationFailed.WrapMessage("bio must be at most 500 characters")
	}

	if !entity.AlcoholToggle(input.AlcoholToggle).Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown alcohol visibility setting")
	}

	known := make(map[string]bool, len(entity.BeverageTags()))
	for _, tag := range entity.BeverageTags() {
		known[tag] = true
	}
	for _, tag := range input.BeveragePreferences {
		if !known[tag] {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown beverage preference: " + tag)
		}
	}

	if input.InstagramHandle != nil {
		handle := *input.InstagramHandle
		if len(handle) > instagramMaxLength || !instagramPattern.MatchString(handle) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid Instagram handle")
		}
	}
	if input.TikTokHandle != nil && len(*input.TikTokHandle) > tiktokMaxLength {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid TikTok handle")
	}

	return nil
}

// imageExtension picks a file extension from the original filename, falling
// back to the content type.
func imageExtension(filename, contentType string) string {
	if ext := path.Ext(filename); ext != "" {
		return ext
	}

	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
