package repository

import (
	"context"

	"pairup/internal/domain/entity"
	"pairup/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateLike is returned when the store's uniqueness constraint rejects
// a second like by the same account. It is the concurrency arbiter for the
// like toggle; the application never race-checks around it.
var ErrDuplicateLike = errors.New("pairing already liked")

// ErrLikeNotFound is returned when a like lookup or delete matches zero rows.
var ErrLikeNotFound = errors.New("like not found")

// EngagementRepository manages likes and comments.
type EngagementRepository interface {
	// CreateLike inserts a like row; a duplicate insert fails with ErrDuplicateLike.
	CreateLike(ctx context.Context, like *entity.Like) error

	// DeleteLike removes a like row; zero rows affected fails with ErrLikeNotFound.
	DeleteLike(ctx context.Context, userID, pairingID uuid.UUID) error

	// LikeExists reports whether the account has liked the pairing.
	LikeExists(ctx context.Context, userID, pairingID uuid.UUID) (bool, error)

	// CountLikes returns the pairing's current like count.
	CountLikes(ctx context.Context, pairingID uuid.UUID) (int64, error)

	// CreateComment appends a comment.
	CreateComment(ctx context.Context, comment *entity.Comment) error

	// ListComments returns a pairing's comments oldest-first with authors expanded.
	ListComments(ctx context.Context, pairingID uuid.UUID) ([]*entity.Comment, error)
}
