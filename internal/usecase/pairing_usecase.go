package usecase

import (
	"context"

	"pairup/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePairingInput defines the data accepted by the submission workflow.
type CreatePairingInput struct {
	ImageData        []byte
	ImageContentType string
	ImageFilename    string
	FoodName         string
	BeverageTag      string
	FlavorPrinciple  *string
	ReviewText       *string
	BeverageBrand    *string
	FoodBrand        *string
	Rating           string
}

// FeedFilter narrows the feed listing. Beverage accepts a single tag or the
// "non-alcoholic" group alias; Principle accepts one of the seven literals.
type FeedFilter struct {
	Beverage  string
	Principle string
}

// PairingDetailOutput returns one pairing with its comments expanded.
type PairingDetailOutput struct {
	Pairing  *entity.Pairing
	Comments []*entity.Comment
}

// PairingUsecase defines the interface for pairing submission and reads.
type PairingUsecase interface {
	// Create runs the submission workflow: validate, upload, insert, with a
	// compensating delete of the uploaded object if the insert fails.
	Create(ctx context.Context, userID uuid.UUID, input CreatePairingInput) (*entity.Pairing, error)

	// Feed lists pairings newest-first. viewerID may be uuid.Nil.
	Feed(ctx context.Context, viewerID uuid.UUID, filter FeedFilter) ([]*entity.Pairing, error)

	// Get returns one pairing with author, counts, and comments expanded.
	Get(ctx context.Context, pairingID, viewerID uuid.UUID) (*PairingDetailOutput, error)

	// RateReality overwrites the author's 1-5 post-tasting score. Only the
	// pairing's author may call it.
	RateReality(ctx context.Context, userID, pairingID uuid.UUID, score int) error
}
