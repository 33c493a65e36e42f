package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"pairup/config"
	deliverycontext "pairup/internal/delivery/context"
	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/repository"
	"pairup/internal/domain/service"
	"pairup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSubmitTimeout = 15 * time.Second

// nonAlcoholicFilter is the feed filter alias expanding to the NA tag set.
const nonAlcoholicFilter = "non-alcoholic"

// pairingService implements the PairingUsecase interface.
type pairingService struct {
	pairingRepo    repository.PairingRepository
	engagementRepo repository.EngagementRepository
	storage        service.ObjectStorage
	submitTimeout  time.Duration
	logger         *slog.Logger
}

// PairingServiceParams holds dependencies for pairingService, injected by Fx.
type PairingServiceParams struct {
	fx.In

	PairingRepo    repository.PairingRepository
	EngagementRepo repository.EngagementRepository
	Storage        service.ObjectStorage
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPairingService is the constructor for pairingService.
func NewPairingService(params PairingServiceParams) usecase.PairingUsecase {
	submitTimeout := defaultSubmitTimeout
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.SubmitTimeout > 0 {
		submitTimeout = params.Config.Storage.SubmitTimeout
	}

	return &pairingService{
		pairingRepo:    params.PairingRepo,
		engagementRepo: params.EngagementRepo,
		storage:        params.Storage,
		submitTimeout:  submitTimeout,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *pairingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create runs the submission workflow: validate, upload the image, insert the
// row, and compensate the upload if the insert fails. The whole operation runs
// under the submit timeout; hitting it surfaces as a distinct error.
func (srv *pairingService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreatePairingInput) (*entity.Pairing, error) {
	pairing, err := buildPairing(userID, &input)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, srv.submitTimeout)
	defer cancel()

	key := userID.String() + "/" +
		strconv.FormatInt(time.Now().UnixNano(), 10) + imageExtension(input.ImageFilename, input.ImageContentType)

	imageURL, err := srv.storage.Upload(ctx, key, input.ImageData, input.ImageContentType)
	if err != nil {
		if ctx.Err() != nil {
			return nil, domainerrors.ErrSubmissionTimeout
		}

		return nil, errors.Wrap(err, "failed to upload pairing image")
	}
	pairing.ImageURL = imageURL

	if err := srv.pairingRepo.Create(ctx, pairing); err != nil {
		// Best-effort compensating delete. The upload is orphaned otherwise;
		// failure to clean up is logged, never propagated.
		deleteCtx, deleteCancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer deleteCancel()
		if delErr := srv.storage.Delete(deleteCtx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to delete orphaned pairing image",
				slog.String("key", key), slog.Any("error", delErr))
		}

		if ctx.Err() != nil {
			return nil, domainerrors.ErrSubmissionTimeout
		}

		return nil, err
	}

	srv.log(ctx).Info("Pairing created", slog.Any("pairingID", pairing.ID), slog.Any("userID", userID))

	return pairing, nil
}

// Feed lists pairings newest-first with the requested filters applied as
// exact matches against the fixed enumerations.
func (srv *pairingService) Feed(ctx context.Context, viewerID uuid.UUID, filter usecase.FeedFilter) ([]*entity.Pairing, error) {
	repoFilter, err := buildPairingFilter(filter)
	if err != nil {
		return nil, err
	}

	pairings, err := srv.pairingRepo.List(ctx, viewerID, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pairings")
	}

	return pairings, nil
}

// Get returns one pairing with author, counts, and comments expanded.
func (srv *pairingService) Get(ctx context.Context, pairingID, viewerID uuid.UUID) (*usecase.PairingDetailOutput, error) {
	pairing, err := srv.pairingRepo.FindByID(ctx, pairingID, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrPairingNotFound) {
			return nil, domainerrors.ErrPairingNotFound
		}

		return nil, errors.Wrap(err, "failed to load pairing")
	}

	comments, err := srv.engagementRepo.ListComments(ctx, pairingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comments")
	}

	return &usecase.PairingDetailOutput{
		Pairing:  pairing,
		Comments: comments,
	}, nil
}

// RateReality overwrites the author's 1-5 post-tasting score. Ownership is
// verified against the pairing row; non-authors are rejected.
func (srv *pairingService) RateReality(ctx context.Context, userID, pairingID uuid.UUID, score int) error {
	if score < 1 || score > 5 {
		return domainerrors.ErrRealityScoreRange
	}

	pairing, err := srv.pairingRepo.FindByID(ctx, pairingID, uuid.Nil)
	if err != nil {
		if errors.Is(err, repository.ErrPairingNotFound) {
			return domainerrors.ErrPairingNotFound
		}

		return errors.Wrap(err, "failed to load pairing")
	}

	if pairing.UserID != userID {
		return domainerrors.ErrNotPairingAuthor
	}

	if err := srv.pairingRepo.UpdateRealityScore(ctx, pairingID, score); err != nil {
		return errors.Wrap(err, "failed to update reality score")
	}

	return nil
}

// buildPairing validates the submission input before any I/O happens.
func buildPairing(userID uuid.UUID, input *usecase.CreatePairingInput) (*entity.Pairing, error) {
	if len(input.ImageData) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("pairing image is required")
	}

	foodName := strings.TrimSpace(input.FoodName)
	if foodName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("food name is required")
	}

	rating := entity.Rating(input.Rating)
	if !rating.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be up or down")
	}

	beverageTag := strings.TrimSpace(input.BeverageTag)
	if beverageTag == "" {
		beverageTag = entity.BeverageTagNone
	}

	var principle *entity.FlavorPrinciple
	if input.FlavorPrinciple != nil && *input.FlavorPrinciple != "" {
		p := entity.FlavorPrinciple(*input.FlavorPrinciple)
		if !p.Valid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown flavor principle")
		}
		principle = &p
	}

	return &entity.Pairing{
		UserID:          userID,
		FoodName:        foodName,
		BeverageTag:     beverageTag,
		FlavorPrinciple: principle,
		ReviewText:      input.ReviewText,
		BeverageBrand:   input.BeverageBrand,
		FoodBrand:       input.FoodBrand,
		Rating:          rating,
	}, nil
}

// buildPairingFilter resolves the feed query into exact-match repository
// filters. "non-alcoholic" expands to the NA tag group.
func buildPairingFilter(filter usecase.FeedFilter) (repository.PairingFilter, error) {
	var repoFilter repository.PairingFilter

	if beverage := strings.TrimSpace(filter.Beverage); beverage != "" {
		if beverage == nonAlcoholicFilter {
			repoFilter.BeverageTags = entity.NonAlcoholicTags()
		} else {
			known := false
			for _, tag := range entity.BeverageTags() {
				if beverage == tag {
					known = true

					break
				}
			}
			if !known {
				return repoFilter, domainerrors.ErrValidationFailed.WrapMessage("unknown beverage filter: " + beverage)
			}
			repoFilter.BeverageTags = []string{beverage}
		}
	}

	if principle := strings.TrimSpace(filter.Principle); principle != "" {
		p := entity.FlavorPrinciple(principle)
		if !p.Valid() {
			return repoFilter, domainerrors.ErrValidationFailed.WrapMessage("unknown flavor principle filter: " + principle)
		}
		repoFilter.FlavorPrinciple = &p
	}

	return repoFilter, nil
}
