package repository

import (
	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

// ListVisible pages posts whose required tier is in visibleTiers, pinned
// first then newest.
func (r *PostRepository) ListVisible(visibleTiers []model.Tier, page, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	query := r.DB.Model(&model.Post{}).Where("required_tier IN ?", visibleTiers)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Author").
		Order("is_pinned DESC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostRepository) FindByID(id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

// DeleteWithDependents removes the post plus its comments and likes.
func (r *PostRepository) DeleteWithDependents(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Post{}).Error
	})
}

func (r *PostRepository) CountLikes(postID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *PostRepository) HasLiked(userID uint, postID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) AddLike(userID uint, postID string) error {
	return r.DB.Create(&model.PostLike{UserID: userID, PostID: postID}).Error
}

func (r *PostRepository) RemoveLike(userID uint, postID string) error {
	return r.DB.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.PostLike{}).Error
}
