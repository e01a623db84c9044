package repository

import (
	"time"

	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateTier(userID uint, tier model.Tier) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("tier", tier).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

// FindIDsByTiers returns the ids of enabled members whose tier is in tiers.
// Used for broadcast audience segmentation.
func (r *UserRepository) FindIDsByTiers(tiers []model.Tier) ([]uint, error) {
	var ids []uint
	q := r.DB.Model(&model.User{}).Where("disabled = ?", false)
	if len(tiers) > 0 {
		q = q.Where("tier IN ?", tiers)
	}
	err := q.Pluck("id", &ids).Error
	return ids, err
}
