package impl

import (
	"context"
	"log/slog"
	"time"

	"pairup/config"
	deliverycontext "pairup/internal/delivery/context"
	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/service"
	"pairup/internal/usecase"

	"go.uber.org/fx"
)

const defaultAnnotationTimeout = 60 * time.Second

// annotationService implements the AnnotationUsecase interface.
type annotationService struct {
	annotator service.ImageAnnotator
	timeout   time.Duration
	logger    *slog.Logger
}

// AnnotationServiceParams holds dependencies for annotationService, injected by Fx.
type AnnotationServiceParams struct {
	fx.In

	Annotator service.ImageAnnotator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAnnotationService is the constructor for annotationService.
func NewAnnotationService(params AnnotationServiceParams) usecase.AnnotationUsecase {
	timeout := defaultAnnotationTimeout
	if params.Config != nil && params.Config.Gemini != nil && params.Config.Gemini.Timeout > 0 {
		timeout = params.Config.Gemini.Timeout
	}

	return &annotationService{
		annotator: params.Annotator,
		timeout:   timeout,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *annotationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Analyze runs one annotation call under the configured timeout.
func (srv *annotationService) Analyze(ctx context.Context, input usecase.AnalyzeImageInput) (*entity.Annotation, error) {
	if len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image is required")
	}

	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	annotation, err := srv.annotator.Annotate(ctx, service.ImageInput{
		Data:     input.Data,
		MIMEType: input.ContentType,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, domainerrors.ErrAnnotationTimeout
		}

		srv.log(ctx).Warn("Annotation failed", slog.Any("error", err))

		return nil, err
	}

	return annotation, nil
}
