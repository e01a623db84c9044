package repository

import (
	"context"

	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
)

// JournalRepository is the authoritative journal entry store.
type JournalRepository struct {
	DB *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

// List returns the user's entries, newest first.
func (r *JournalRepository) List(ctx context.Context, userID uint) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *JournalRepository) Insert(ctx context.Context, entry *model.JournalEntry) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}

func (r *JournalRepository) Save(ctx context.Context, entry *model.JournalEntry) error {
	return r.DB.WithContext(ctx).Save(entry).Error
}

// Delete removes the entry scoped to its owner. Deleting an id that does not
// exist is not an error.
func (r *JournalRepository) Delete(ctx context.Context, userID uint, entryID string) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, entryID).
		Delete(&model.JournalEntry{}).Error
}
