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

// engagementRepository implements the repository.EngagementRepository interface.
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(db *gorm.DB) repository.EngagementRepository {
	return &engagementRepository{
		db: db,
	}
}

// CreateLike inserts a like row. The composite primary key rejects a second
// like by the same account, which surfaces as ErrDuplicateLike.
func (repo *engagementRepository) CreateLike(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		UserID:    like.UserID,
		PairingID: like.PairingID,
	}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPairingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.CreatedAt = likeM.CreatedAt

	return nil
}

// DeleteLike removes a like row.
func (repo *engagementRepository) DeleteLike(ctx context.Context, userID, pairingID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND pairing_id = ?", userID, pairingID).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// LikeExists reports whether the account has liked the pairing.
func (repo *engagementRepository) LikeExists(ctx context.Context, userID, pairingID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("user_id = ? AND pairing_id = ?", userID, pairingID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check like existence")
	}

	return count > 0, nil
}

// CountLikes returns the pairing's current like count.
func (repo *engagementRepository) CountLikes(ctx context.Context, pairingID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("pairing_id = ?", pairingID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

// CreateComment appends a comment.
func (repo *engagementRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		ID:        comment.ID,
		UserID:    comment.UserID,
		PairingID: comment.PairingID,
		Content:   comment.Content,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPairingNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListComments returns a pairing's comments oldest-first with authors expanded.
func (repo *engagementRepository) ListComments(ctx context.Context, pairingID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("pairing_id = ?", pairingID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, &entity.Comment{
			ID:        commentM.ID,
			UserID:    commentM.UserID,
			PairingID: commentM.PairingID,
			Content:   commentM.Content,
			CreatedAt: commentM.CreatedAt,
			Author:    toProfileDomain(commentM.Author),
		})
	}

	return comments, nil
}
