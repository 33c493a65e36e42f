package postgres

import (
	"context"

	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/repository"
	"pairup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultFeedLimit = 50

// pairingRepository implements the repository.PairingRepository interface.
type pairingRepository struct {
	db *gorm.DB
}

// NewPairingRepository is the constructor for pairingRepository.
func NewPairingRepository(db *gorm.DB) repository.PairingRepository {
	return &pairingRepository{
		db: db,
	}
}

// Create persists a new pairing.
func (repo *pairingRepository) Create(ctx context.Context, pairing *entity.Pairing) error {
	pairingM := fromPairingDomain(pairing)

	if err := repo.db.WithContext(ctx).Create(pairingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pairing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pairing")
	}

	pairing.ID = pairingM.ID
	pairing.CreatedAt = pairingM.CreatedAt

	return nil
}

// FindByID retrieves one pairing with author, counts, and the viewer's liked
// flag expanded.
func (repo *pairingRepository) FindByID(ctx context.Context, id, viewerID uuid.UUID) (*entity.Pairing, error) {
	var pairingM model.PairingModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&pairingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPairingNotFound
		}

		return nil, errors.Wrap(err, "failed to find pairing by ID")
	}

	expansion, err := repo.loadEngagement(ctx, []*model.PairingModel{&pairingM}, viewerID)
	if err != nil {
		return nil, err
	}

	return toPairingDomainExpanded(&pairingM, expansion), nil
}

// List returns pairings newest-first with the same expansions as FindByID.
func (repo *pairingRepository) List(ctx context.Context, viewerID uuid.UUID, filter repository.PairingFilter) ([]*entity.Pairing, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	query := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit)

	if len(filter.BeverageTags) > 0 {
		query = query.Where("beverage_tag IN ?", filter.BeverageTags)
	}
	if filter.FlavorPrinciple != nil {
		query = query.Where("flavor_principle = ?", string(*filter.FlavorPrinciple))
	}

	var pairingModels []*model.PairingModel
	if err := query.Find(&pairingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pairings")
	}

	expansion, err := repo.loadEngagement(ctx, pairingModels, viewerID)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Pairing, 0, len(pairingModels))
	for _, pairingM := range pairingModels {
		result = append(result, toPairingDomainExpanded(pairingM, expansion))
	}

	return result, nil
}

// UpdateRealityScore overwrites the author's post-tasting score.
func (repo *pairingRepository) UpdateRealityScore(ctx context.Context, pairingID uuid.UUID, score int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PairingModel{}).
		Where("id = ?", pairingID).
		Update("reality_score", score)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reality score")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPairingNotFound
	}

	return nil
}

// engagementCount carries one aggregate row of the per-pairing GROUP BY.
type engagementCount struct {
	PairingID uuid.UUID
	Total     int64
}

// engagementExpansion holds per-call aggregates keyed by pairing ID.
type engagementExpansion struct {
	likeCounts    map[uuid.UUID]int64
	commentCounts map[uuid.UUID]int64
	liked         map[uuid.UUID]bool
}

// loadEngagement gathers like counts, comment counts, and the viewer's liked
// flag for the loaded models via three aggregate queries, avoiding a per-row
// fan-out.
func (repo *pairingRepository) loadEngagement(ctx context.Context, pairings []*model.PairingModel, viewerID uuid.UUID) (engagementExpansion, error) {
	expansion := engagementExpansion{
		likeCounts:    map[uuid.UUID]int64{},
		commentCounts: map[uuid.UUID]int64{},
		liked:         map[uuid.UUID]bool{},
	}
	if len(pairings) == 0 {
		return expansion, nil
	}

	ids := make([]uuid.UUID, 0, len(pairings))
	for _, pairingM := range pairings {
		ids = append(ids, pairingM.ID)
	}

	likeCounts, err := repo.countByPairing(ctx, &model.LikeModel{}, ids)
	if err != nil {
		return expansion, errors.Wrap(err, "failed to count likes")
	}
	expansion.likeCounts = likeCounts

	commentCounts, err := repo.countByPairing(ctx, &model.CommentModel{}, ids)
	if err != nil {
		return expansion, errors.Wrap(err, "failed to count comments")
	}
	expansion.commentCounts = commentCounts

	if viewerID != uuid.Nil {
		var likedIDs []uuid.UUID
		if err := repo.db.WithContext(ctx).
			Model(&model.LikeModel{}).
			Where("user_id = ? AND pairing_id IN ?", viewerID, ids).
			Pluck("pairing_id", &likedIDs).Error; err != nil {
			return expansion, errors.Wrap(err, "failed to load viewer likes")
		}
		for _, id := range likedIDs {
			expansion.liked[id] = true
		}
	}

	return expansion, nil
}

func (repo *pairingRepository) countByPairing(ctx context.Context, rowModel any, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []engagementCount

	if err := repo.db.WithContext(ctx).
		Model(rowModel).
		Select("pairing_id, COUNT(*) AS total").
		Where("pairing_id IN ?", ids).
		Group("pairing_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.PairingID] = row.Total
	}

	return counts, nil
}

func toPairingDomainExpanded(data *model.PairingModel, expansion engagementExpansion) *entity.Pairing {
	pairing := toPairingDomain(data)
	pairing.LikeCount = expansion.likeCounts[data.ID]
	pairing.CommentCount = expansion.commentCounts[data.ID]
	pairing.LikedByViewer = expansion.liked[data.ID]

	return pairing
}

// --- Mapper Functions ---

func toPairingDomain(data *model.PairingModel) *entity.Pairing {
	if data == nil {
		return nil
	}

	var principle *entity.FlavorPrinciple
	if data.FlavorPrinciple != nil {
		p := entity.FlavorPrinciple(*data.FlavorPrinciple)
		principle = &p
	}

	return &entity.Pairing{
		ID:              data.ID,
		UserID:          data.UserID,
		ImageURL:        data.ImageURL,
		FoodName:        data.FoodName,
		BeverageTag:     data.BeverageTag,
		FlavorPrinciple: principle,
		ReviewText:      data.ReviewText,
		BeverageBrand:   data.BeverageBrand,
		FoodBrand:       data.FoodBrand,
		Rating:          entity.Rating(data.Rating),
		RealityScore:    data.RealityScore,
		CreatedAt:       data.CreatedAt,
		Author:          toProfileDomain(data.Author),
	}
}

func fromPairingDomain(data *entity.Pairing) *model.PairingModel {
	if data == nil {
		return nil
	}

	var principle *string
	if data.FlavorPrinciple != nil {
		p := string(*data.FlavorPrinciple)
		principle = &p
	}

	return &model.PairingModel{
		ID:              data.ID,
		UserID:          data.UserID,
		ImageURL:        data.ImageURL,
		FoodName:        data.FoodName,
		BeverageTag:     data.BeverageTag,
		FlavorPrinciple: principle,
		ReviewText:      data.ReviewText,
		BeverageBrand:   data.BeverageBrand,
		FoodBrand:       data.FoodBrand,
		Rating:          string(data.Rating),
		RealityScore:    data.RealityScore,
	}
}
