package repository

import (
	"context"

	"pairup/internal/domain/entity"
	"pairup/internal/errors"

	"github.com/google/uuid"
)

// ErrPairingNotFound is returned when a pairing lookup matches zero rows.
var ErrPairingNotFound = errors.New("pairing not found")

// PairingFilter narrows feed queries. Filters are exact-match against the
// fixed tag/principle enumerations; an empty filter returns everything.
type PairingFilter struct {
	// BeverageTags restricts results to pairings whose tag is in the set.
	BeverageTags []string

	// FlavorPrinciple restricts results to one of the seven literals.
	FlavorPrinciple *entity.FlavorPrinciple

	// Limit caps the number of rows; 0 means the repository default.
	Limit int
}

// PairingRepository manages published pairings.
type PairingRepository interface {
	// Create persists a new pairing.
	Create(ctx context.Context, pairing *entity.Pairing) error

	// FindByID retrieves one pairing with author profile, like/comment counts,
	// and the viewer's liked flag expanded. viewerID may be uuid.Nil.
	FindByID(ctx context.Context, id, viewerID uuid.UUID) (*entity.Pairing, error)

	// List returns pairings newest-first with the same expansions as FindByID.
	List(ctx context.Context, viewerID uuid.UUID, filter PairingFilter) ([]*entity.Pairing, error)

	// UpdateRealityScore overwrites the author's post-tasting score.
	UpdateRealityScore(ctx context.Context, pairingID uuid.UUID, score int) error
}
