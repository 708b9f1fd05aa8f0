package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gosocial/internal/model"
)

type PostLikeRepository struct {
	db *gorm.DB
}

func NewPostLikeRepository(db *gorm.DB) *PostLikeRepository {
	return &PostLikeRepository{db: db}
}

// Create inserts the like and lets the composite unique index reject a
// duplicate; callers match gorm.ErrDuplicatedKey to detect that.
func (r *PostLikeRepository) Create(like *model.PostLike) error {
	if err := r.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create like: %w", gorm.ErrDuplicatedKey)
		}
		return fmt.Errorf("create like failed: %w", err)
	}
	return nil
}

// DeleteByPostAndUser removes the like if present and reports how many rows
// went away, so the caller can distinguish "no like existed".
func (r *PostLikeRepository) DeleteByPostAndUser(postID, userID uint) (int64, error) {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.PostLike{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete like failed: %w", res.Error)
	}
	return res.RowsAffected, nil
}
