package impl

import (
	"context"
	"testing"
	"time"

	"pairup/config"
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

type pairingServiceFixtures struct {
	service        usecase.PairingUsecase
	pairingRepo    *mockRepo.MockPairingRepository
	engagementRepo *mockRepo.MockEngagementRepository
	storage        *mockSvc.MockObjectStorage
}

func createTestPairingService(t *testing.T) pairingServiceFixtures {
	pairingRepo := mockRepo.NewMockPairingRepository(t)
	engagementRepo := mockRepo.NewMockEngagementRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	svc := NewPairingService(PairingServiceParams{
		PairingRepo:    pairingRepo,
		EngagementRepo: engagementRepo,
		Storage:        storage,
		Logger:         newDiscardLogger(),
	})

	return pairingServiceFixtures{
		service:        svc,
		pairingRepo:    pairingRepo,
		engagementRepo: engagementRepo,
		storage:        storage,
	}
}

func validPairingInput() usecase.CreatePairingInput {
	return usecase.CreatePairingInput{
		ImageData:        []byte("image-bytes"),
		ImageContentType: "image/jpeg",
		ImageFilename:    "photo.jpg",
		FoodName:         "Margherita Pizza",
		BeverageTag:      "wine",
		Rating:           "up",
	}
}

func TestPairingService_Create_Success(t *testing.T) {
	fx := createTestPairingService(t)

	userID := uuid.New()
	input := validPairingInput()

	fx.storage.EXPECT().
		Upload(mock.Anything, mock.AnythingOfType("string"), input.ImageData, "image/jpeg").
		Return("https://cdn.example.com/photo.jpg", nil)
	fx.pairingRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pairing")).
		Return(nil)

	pairing, err := fx.service.Create(context.Background(), userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, pairing.UserID)
	assert.Equal(t, "https://cdn.example.com/photo.jpg", pairing.ImageURL)
	assert.Equal(t, entity.RatingUp, pairing.Rating)
}

func TestPairingService_Create_ValidationBeforeIO(t *testing.T) {
	fx := createTestPairingService(t)

	tests := []struct {
		name   string
		mutate func(*usecase.CreatePairingInput)
	}{
		{"missing image", func(in *usecase.CreatePairingInput) { in.ImageData = nil }},
		{"missing food name", func(in *usecase.CreatePairingInput) { in.FoodName = "  " }},
		{"bad rating", func(in *usecase.CreatePairingInput) { in.Rating = "sideways" }},
		{"unknown principle", func(in *usecase.CreatePairingInput) {
			bad := "Salty + Salty"
			in.FlavorPrinciple = &bad
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPairingInput()
			tt.mutate(&input)

			// No storage or repository expectations: invalid input must be
			// rejected before any I/O happens.
			pairing, err := fx.service.Create(context.Background(), uuid.New(), input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, pairing)
		})
	}
}

func TestPairingService_Create_CompensatesUploadOnInsertFailure(t *testing.T) {
	fx := createTestPairingService(t)

	input := validPairingInput()
	var uploadedKey string

	fx.storage.EXPECT().
		Upload(mock.Anything, mock.AnythingOfType("string"), input.ImageData, "image/jpeg").
		Run(func(ctx context.Context, key string, data []byte, contentType string) {
			uploadedKey = key
		}).
		Return("https://cdn.example.com/photo.jpg", nil)
	fx.pairingRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pairing")).
		Return(assert.AnError)
	fx.storage.EXPECT().
		Delete(mock.Anything, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, key string) {
			assert.Equal(t, uploadedKey, key)
		}).
		Return(nil)

	pairing, err := fx.service.Create(context.Background(), uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, pairing)
}

func TestPairingService_Create_SubmitTimeout(t *testing.T) {
	pairingRepo := mockRepo.NewMockPairingRepository(t)
	engagementRepo := mockRepo.NewMockEngagementRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{SubmitTimeout: time.Nanosecond}

	svc := NewPairingService(PairingServiceParams{
		PairingRepo:    pairingRepo,
		EngagementRepo: engagementRepo,
		Storage:        storage,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	input := validPairingInput()

	storage.EXPECT().
		Upload(mock.Anything, mock.AnythingOfType("string"), input.ImageData, "image/jpeg").
		RunAndReturn(func(ctx context.Context, key string, data []byte, contentType string) (string, error) {
			<-ctx.Done()

			return "", ctx.Err()
		})

	pairing, err := svc.Create(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrSubmissionTimeout)
	assert.Nil(t, pairing)
}

func TestPairingService_Create_RepeatedSubmissionsInsertTwice(t *testing.T) {
	fx := createTestPairingService(t)

	userID := uuid.New()
	input := validPairingInput()

	// No idempotency key: resubmitting the same form is two independent
	// uploads and two rows.
	fx.storage.EXPECT().
		Upload(mock.Anything, mock.AnythingOfType("string"), input.ImageData, "image/jpeg").
		Return("https://cdn.example.com/photo.jpg", nil).
		Twice()
	fx.pairingRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pairing")).
		Return(nil).
		Twice()

	first, err := fx.service.Create(context.Background(), userID, input)
	require.NoError(t, err)

	second, err := fx.service.Create(context.Background(), userID, input)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestPairingService_Create_DefaultsBeverageTag(t *testing.T) {
	fx := createTestPairingService(t)

	input := validPairingInput()
	input.BeverageTag = "  "

	fx.storage.EXPECT().
		Upload(mock.Anything, mock.AnythingOfType("string"), input.ImageData, "image/jpeg").
		Return("https://cdn.example.com/photo.jpg", nil)
	fx.pairingRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pairing")).
		Run(func(ctx context.Context, pairing *entity.Pairing) {
			assert.Equal(t, entity.BeverageTagNone, pairing.BeverageTag)
		}).
		Return(nil)

	_, err := fx.service.Create(context.Background(), uuid.New(), input)

	require.NoError(t, err)
}

func TestPairingService_Feed_NonAlcoholicFilterExpands(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	fx.pairingRepo.EXPECT().
		List(ctx, viewerID, mock.AnythingOfType("repository.PairingFilter")).
		Run(func(ctx context.Context, viewerID uuid.UUID, filter repository.PairingFilter) {
			assert.Equal(t, entity.NonAlcoholicTags(), filter.BeverageTags)
		}).
		Return([]*entity.Pairing{}, nil)

	_, err := fx.service.Feed(ctx, viewerID, usecase.FeedFilter{Beverage: "non-alcoholic"})

	require.NoError(t, err)
}

func TestPairingService_Feed_UnknownFilterRejected(t *testing.T) {
	fx := createTestPairingService(t)

	_, err := fx.service.Feed(context.Background(), uuid.New(), usecase.FeedFilter{Beverage: "kombucha"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Feed(context.Background(), uuid.New(), usecase.FeedFilter{Principle: "Loud + Quiet"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPairingService_Get_WithComments(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	pairingID := uuid.New()
	viewerID := uuid.New()
	pairing := &entity.Pairing{ID: pairingID}
	comments := []*entity.Comment{{ID: uuid.New(), PairingID: pairingID, Content: "Looks great"}}

	fx.pairingRepo.EXPECT().FindByID(ctx, pairingID, viewerID).Return(pairing, nil)
	fx.engagementRepo.EXPECT().ListComments(ctx, pairingID).Return(comments, nil)

	detail, err := fx.service.Get(ctx, pairingID, viewerID)

	require.NoError(t, err)
	assert.Equal(t, pairing, detail.Pairing)
	assert.Len(t, detail.Comments, 1)
}

func TestPairingService_Get_NotFound(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	pairingID := uuid.New()

	fx.pairingRepo.EXPECT().
		FindByID(ctx, pairingID, uuid.Nil).
		Return(nil, repository.ErrPairingNotFound)

	detail, err := fx.service.Get(ctx, pairingID, uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrPairingNotFound)
	assert.Nil(t, detail)
}

func TestPairingService_RateReality_Success(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	userID := uuid.New()
	pairingID := uuid.New()

	fx.pairingRepo.EXPECT().
		FindByID(ctx, pairingID, uuid.Nil).
		Return(&entity.Pairing{ID: pairingID, UserID: userID}, nil)
	fx.pairingRepo.EXPECT().UpdateRealityScore(ctx, pairingID, 4).Return(nil)

	err := fx.service.RateReality(ctx, userID, pairingID, 4)

	require.NoError(t, err)
}

func TestPairingService_RateReality_ScoreOutOfRange(t *testing.T) {
	fx := createTestPairingService(t)

	err := fx.service.RateReality(context.Background(), uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrRealityScoreRange)

	err = fx.service.RateReality(context.Background(), uuid.New(), uuid.New(), 6)
	assert.ErrorIs(t, err, domainerrors.ErrRealityScoreRange)
}

func TestPairingService_RateReality_NotAuthor(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	pairingID := uuid.New()

	fx.pairingRepo.EXPECT().
		FindByID(ctx, pairingID, uuid.Nil).
		Return(&entity.Pairing{ID: pairingID, UserID: uuid.New()}, nil)

	err := fx.service.RateReality(ctx, uuid.New(), pairingID, 3)

	assert.ErrorIs(t, err, domainerrors.ErrNotPairingAuthor)
}
