package repository

import (
	"time"

	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
)

type BroadcastRepository struct {
	DB *gorm.DB
}

func NewBroadcastRepository(db *gorm.DB) *BroadcastRepository {
	return &BroadcastRepository{DB: db}
}

func (r *BroadcastRepository) Create(b *model.Broadcast) error {
	return r.DB.Create(b).Error
}

func (r *BroadcastRepository) Update(b *model.Broadcast) error {
	return r.DB.Save(b).Error
}

func (r *BroadcastRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Broadcast{}, id).Error
}

func (r *BroadcastRepository) FindByID(id uint) (*model.Broadcast, error) {
	var b model.Broadcast
	err := r.DB.First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BroadcastRepository) List(page, limit int) ([]model.Broadcast, int64, error) {
	var broadcasts []model.Broadcast
	var total int64

	if err := r.DB.Model(&model.Broadcast{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.DB.Order("created_at DESC").Offset(offset).Limit(limit).Find(&broadcasts).Error
	return broadcasts, total, err
}

// FindDue returns scheduled broadcasts whose time has arrived.
func (r *BroadcastRepository) FindDue(now time.Time) ([]model.Broadcast, error) {
	var broadcasts []model.Broadcast
	err := r.DB.
		Where("status = ? AND scheduled_at <= ?", model.BroadcastScheduled, now).
		Find(&broadcasts).Error
	return broadcasts, err
}

func (r *BroadcastRepository) CountByStatus(status model.BroadcastStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Broadcast{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
