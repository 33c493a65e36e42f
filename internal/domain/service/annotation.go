package service

import (
	"context"

	"pairup/internal/domain/entity"
)

// ImageInput is an uploaded photo handed to the annotator.
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// ImageAnnotator extracts a structured pairing annotation from a photo.
// Annotate makes exactly one model call per invocation; retry policy belongs
// to the caller.
type ImageAnnotator interface {
	Annotate(ctx context.Context, image ImageInput) (*entity.Annotation, error)
}
