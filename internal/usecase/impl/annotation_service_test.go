package impl

import (
	"context"
	"testing"
	"time"

	"pairup/config"
	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/service"
	mockSvc "pairup/internal/mocks/service"
	"pairup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type annotationServiceFixtures struct {
	service   usecase.AnnotationUsecase
	annotator *mockSvc.MockImageAnnotator
}

func createTestAnnotationService(t *testing.T) annotationServiceFixtures {
	annotator := mockSvc.NewMockImageAnnotator(t)

	svc := NewAnnotationService(AnnotationServiceParams{
		Annotator: annotator,
		Logger:    newDiscardLogger(),
	})

	return annotationServiceFixtures{
		service:   svc,
		annotator: annotator,
	}
}

func TestAnnotationService_Analyze_Success(t *testing.T) {
	fx := createTestAnnotationService(t)

	data := []byte("image-bytes")
	expected := &entity.Annotation{
		FoodName:        "Margherita Pizza",
		BeverageType:    "wine",
		FlavorPrinciple: "Acid + Umami",
		ReviewText:      "Bright acidity cuts through the cheese.",
	}

	fx.annotator.EXPECT().
		Annotate(mock.Anything, service.ImageInput{Data: data, MIMEType: "image/jpeg"}).
		Return(expected, nil)

	annotation, err := fx.service.Analyze(context.Background(), usecase.AnalyzeImageInput{
		Data:        data,
		ContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, annotation)
}

func TestAnnotationService_Analyze_EmptyImage(t *testing.T) {
	fx := createTestAnnotationService(t)

	annotation, err := fx.service.Analyze(context.Background(), usecase.AnalyzeImageInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, annotation)
}

func TestAnnotationService_Analyze_Timeout(t *testing.T) {
	annotator := mockSvc.NewMockImageAnnotator(t)

	cfg := &config.Config{}
	cfg.Gemini = &config.GeminiConfig{Timeout: time.Nanosecond}

	svc := NewAnnotationService(AnnotationServiceParams{
		Annotator: annotator,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	annotator.EXPECT().
		Annotate(mock.Anything, mock.AnythingOfType("service.ImageInput")).
		RunAndReturn(func(ctx context.Context, input service.ImageInput) (*entity.Annotation, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	annotation, err := svc.Analyze(context.Background(), usecase.AnalyzeImageInput{
		Data:        []byte("image-bytes"),
		ContentType: "image/jpeg",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAnnotationTimeout)
	assert.Nil(t, annotation)
}

func TestAnnotationService_Analyze_AnnotatorErrorPropagates(t *testing.T) {
	fx := createTestAnnotationService(t)

	fx.annotator.EXPECT().
		Annotate(mock.Anything, mock.AnythingOfType("service.ImageInput")).
		Return(nil, domainerrors.ErrAnnotationMalformed)

	annotation, err := fx.service.Analyze(context.Background(), usecase.AnalyzeImageInput{
		Data:        []byte("image-bytes"),
		ContentType: "image/jpeg",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAnnotationMalformed)
	assert.Nil(t, annotation)
}
