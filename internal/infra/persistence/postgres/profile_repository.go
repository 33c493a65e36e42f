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
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Upsert creates the profile on first save and overwrites it afterwards.
// The username uniqueness constraint surfaces as ErrUsernameTaken.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "display_name", "bio",
				"beverage_preferences", "alcohol_toggle",
				"instagram_handle", "tik_tok_handle", "updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile owned by an account.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUsername retrieves a profile by its unique handle.
func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return toProfileDomain(&profileM), nil
}

// Exists reports whether a profile row exists for the account. Lookup failures
// other than "zero rows" are returned as errors, never folded into false.
func (repo *profileRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check profile existence")
	}

	return count > 0, nil
}

// UpdateAvatarURL points the profile at a newly uploaded avatar object.
func (repo *profileRepository) UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("avatar_url", avatarURL)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update avatar URL")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:              data.UserID,
		Username:            data.Username,
		DisplayName:         data.DisplayName,
		Bio:                 data.Bio,
		AvatarURL:           data.AvatarURL,
		BeveragePreferences: data.BeveragePreferences,
		AlcoholToggle:       entity.AlcoholToggle(data.AlcoholToggle),
		InstagramHandle:     data.InstagramHandle,
		TikTokHandle:        data.TikTokHandle,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:              data.UserID,
		Username:            data.Username,
		DisplayName:         data.DisplayName,
		Bio:                 data.Bio,
		AvatarURL:           data.AvatarURL,
		BeveragePreferences: data.BeveragePreferences,
		AlcoholToggle:       string(data.AlcoholToggle),
		InstagramHandle:     data.InstagramHandle,
		TikTokHandle:        data.TikTokHandle,
	}
}
