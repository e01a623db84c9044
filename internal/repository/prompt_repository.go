package repository

import (
	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
)

type PromptRepository struct {
	DB *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{DB: db}
}

// ListEnabled returns the prompt list in seeding order. Selection indexes
// into this slice, so the order must be stable.
func (r *PromptRepository) ListEnabled() ([]model.JournalPrompt, error) {
	var prompts []model.JournalPrompt
	err := r.DB.Where("enabled = ?", true).Order("id ASC").Find(&prompts).Error
	return prompts, err
}
