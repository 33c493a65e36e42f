package usecase

import (
	"context"

	"pairup/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeResult carries the authoritative post-toggle state. Clients that applied
// an optimistic update reconcile against it.
type LikeResult struct {
	Liked     bool
	LikeCount int64
}

// EngagementUsecase defines the interface for likes and comments.
type EngagementUsecase interface {
	// ToggleLike flips the caller's like on a pairing and returns the
	// resulting state. Concurrent toggles are settled by the store's
	// uniqueness constraint.
	ToggleLike(ctx context.Context, userID, pairingID uuid.UUID) (*LikeResult, error)

	// AddComment appends a comment to a pairing.
	AddComment(ctx context.Context, userID, pairingID uuid.UUID, content string) (*entity.Comment, error)
}
