package repository

import (
	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.DB.Create(sub).Error
}

func (r *SubscriptionRepository) Update(sub *model.Subscription) error {
	return r.DB.Save(sub).Error
}

func (r *SubscriptionRepository) FindByCheckoutRef(ref string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("checkout_ref = ?", ref).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) FindActiveByUser(userID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.SubscriptionActive).
		Order("created_at DESC").First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListByUser(userID uint) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}
