package impl

import (
	"context"
	"strings"
	"testing"

	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/repository"
	mockRepo "pairup/internal/mocks/repository"
	mockSvc "pairup/internal/mocks/service"
	"pairup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	storage     *mockSvc.MockObjectStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	svc := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Storage:     storage,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     svc,
		profileRepo: profileRepo,
		storage:     storage,
	}
}

func validSaveProfileInput() usecase.SaveProfileInput {
	return usecase.SaveProfileInput{
		Username:      "Wine_Fan42",
		DisplayName:   "Wine Fan",
		Bio:           "Pairing enthusiast",
		AlcoholToggle: string(entity.AlcoholShowAll),
	}
}

func TestProfileService_Save_LowercasesUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			require.NotNil(t, profile.Username)
			assert.Equal(t, "wine_fan42", *profile.Username)
		}).
		Return(nil)

	profile, err := fx.service.Save(ctx, userID, validSaveProfileInput())

	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
}

func TestProfileService_Save_UsernameTaken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(repository.ErrUsernameTaken)

	profile, err := fx.service.Save(ctx, uuid.New(), validSaveProfileInput())

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	assert.Nil(t, profile)
}

func TestProfileService_Save_Validation(t *testing.T) {
	fx := createTestProfileService(t)

	longHandle := strings.Repeat("a", 31)
	badHandle := "bad-handle!"
	longTikTok := strings.Repeat("b", 25)

	tests := []struct {
		name   string
		mutate func(*usecase.SaveProfileInput)
	}{
		{"username too short", func(in *usecase.SaveProfileInput) { in.Username = "ab" }},
		{"username too long", func(in *usecase.SaveProfileInput) { in.Username = strings.Repeat("a", 31) }},
		{"username bad characters", func(in *usecase.SaveProfileInput) { in.Username = "wine fan" }},
		{"display name too short", func(in *usecase.SaveProfileInput) { in.DisplayName = "x" }},
		{"display name too long", func(in *usecase.SaveProfileInput) { in.DisplayName = strings.Repeat("d", 51) }},
		{"bio too long", func(in *usecase.SaveProfileInput) { in.Bio = strings.Repeat("b", 501) }},
		{"unknown alcohol toggle", func(in *usecase.SaveProfileInput) { in.AlcoholToggle = "Sometimes" }},
		{"unknown beverage preference", func(in *usecase.SaveProfileInput) {
			in.BeveragePreferences = []string{"wine", "kombucha"}
		}},
		{"instagram handle too long", func(in *usecase.SaveProfileInput) { in.InstagramHandle = &longHandle }},
		{"instagram handle bad characters", func(in *usecase.SaveProfileInput) { in.InstagramHandle = &badHandle }},
		{"tiktok handle too long", func(in *usecase.SaveProfileInput) { in.TikTokHandle = &longTikTok }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSaveProfileInput()
			tt.mutate(&input)

			profile, err := fx.service.Save(context.Background(), uuid.New(), input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, profile)
		})
	}
}

func TestProfileService_GetOwn_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetOwn(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Nil(t, profile)
}

func TestProfileService_UploadAvatar_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	data := []byte("avatar-bytes")

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), data, "image/png").
		Run(func(ctx context.Context, key string, data []byte, contentType string) {
			assert.True(t, strings.HasPrefix(key, "avatars/"+userID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".png"))
		}).
		Return("https://cdn.example.com/avatar.png", nil)
	fx.profileRepo.EXPECT().
		UpdateAvatarURL(ctx, userID, "https://cdn.example.com/avatar.png").
		Return(nil)

	url, err := fx.service.UploadAvatar(ctx, userID, usecase.AvatarUploadInput{
		Data:        data,
		ContentType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", url)
}

func TestProfileService_UploadAvatar_EmptyImage(t *testing.T) {
	fx := createTestProfileService(t)

	url, err := fx.service.UploadAvatar(context.Background(), uuid.New(), usecase.AvatarUploadInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, url)
}

func TestProfileService_UploadAvatar_ProfileMissing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	data := []byte("avatar-bytes")

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), data, "image/jpeg").
		Return("https://cdn.example.com/avatar.jpg", nil)
	fx.profileRepo.EXPECT().
		UpdateAvatarURL(ctx, userID, "https://cdn.example.com/avatar.jpg").
		Return(repository.ErrProfileNotFound)

	url, err := fx.service.UploadAvatar(ctx, userID, usecase.AvatarUploadInput{
		Data:        data,
		ContentType: "image/jpeg",
	})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Empty(t, url)
}
