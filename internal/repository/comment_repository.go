package repository

import (
	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) ListByPost(postID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) FindByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Comment{}).Error
}

func (r *CommentRepository) CountByPost(postID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
