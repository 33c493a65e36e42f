package usecase

import (
	"context"

	"pairup/internal/domain/entity"
)

// AnalyzeImageInput carries an uploaded photo for annotation.
type AnalyzeImageInput struct {
	Data        []byte
	ContentType string
}

// AnnotationUsecase defines the interface for the pairing photo analysis.
type AnnotationUsecase interface {
	// Analyze runs one annotation call under the configured timeout. The
	// result pre-fills the submission form and is advisory only.
	Analyze(ctx context.Context, input AnalyzeImageInput) (*entity.Annotation, error)
}
