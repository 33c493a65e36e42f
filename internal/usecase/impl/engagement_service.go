package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pairup/internal/delivery/context"
	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/repository"
	"pairup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const commentMaxLength = 1000

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	engagementRepo repository.EngagementRepository
	pairingRepo    repository.PairingRepository
	logger         *slog.Logger
}

// EngagementServiceParams holds dependencies for engagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	EngagementRepo repository.EngagementRepository
	PairingRepo    repository.PairingRepository
	Logger         *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		engagementRepo: params.EngagementRepo,
		pairingRepo:    params.PairingRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleLike flips the caller's like on a pairing. The check-then-act pair is
// deliberately not transactional: the store's uniqueness constraint settles
// concurrent toggles, so a duplicate insert resolves to "now liked" and a
// missing delete resolves to "not liked".
func (srv *engagementService) ToggleLike(ctx context.Context, userID, pairingID uuid.UUID) (*usecase.LikeResult, error) {
	exists, err := srv.engagementRepo.LikeExists(ctx, userID, pairingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check like state")
	}

	liked := !exists
	if exists {
		err = srv.engagementRepo.DeleteLike(ctx, userID, pairingID)
		if errors.Is(err, repository.ErrLikeNotFound) {
			// A concurrent unlike won; the end state matches intent.
			err = nil
		}
	} else {
		err = srv.engagementRepo.CreateLike(ctx, &entity.Like{UserID: userID, PairingID: pairingID})
		if errors.Is(err, repository.ErrDuplicateLike) {
			// A concurrent like won; the pairing is liked either way.
			err = nil
		}
		if errors.Is(err, repository.ErrPairingNotFound) {
			return nil, domainerrors.ErrPairingNotFound
		}
	}
	if err != nil {
		srv.log(ctx).Error("Like toggle failed",
			slog.Any("userID", userID), slog.Any("pairingID", pairingID), slog.Any("error", err))

		return nil, err
	}

	count, err := srv.engagementRepo.CountLikes(ctx, pairingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes")
	}

	return &usecase.LikeResult{
		Liked:     liked,
		LikeCount: count,
	}, nil
}

// AddComment appends a comment to a pairing.
func (srv *engagementService) AddComment(ctx context.Context, userID, pairingID uuid.UUID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment text is required")
	}
	if len(content) > commentMaxLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment is too long")
	}

	comment := &entity.Comment{
		UserID:    userID,
		PairingID: pairingID,
		Content:   content,
	}
	if err := srv.engagementRepo.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrPairingNotFound) {
			return nil, domainerrors.ErrPairingNotFound
		}

		return nil, err
	}

	return comment, nil
}
