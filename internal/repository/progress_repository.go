package repository

import (
	"time"

	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert writes progress keyed by user+lesson. WatchedSeconds only moves
// forward; a replay from the start must not erase progress.
func (r *ProgressRepository) Upsert(progress *model.LessonProgress) error {
	progress.LastWatchedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"watched_seconds": gorm.Expr("GREATEST(watched_seconds, ?)", progress.WatchedSeconds),
			"completed":       gorm.Expr("completed OR ?", progress.Completed),
			"last_watched_at": progress.LastWatchedAt,
			"updated_at":      time.Now(),
		}),
	}).Create(progress).Error
}

func (r *ProgressRepository) Find(userID, lessonID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByUserAndCourse(userID, courseID uint) ([]model.LessonProgress, error) {
	var progress []model.LessonProgress
	err := r.DB.
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lesson_progress.user_id = ? AND lessons.course_id = ?", userID, courseID).
		Find(&progress).Error
	return progress, err
}

func (r *ProgressRepository) CountCompleted(userID, courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lesson_progress.user_id = ? AND lessons.course_id = ? AND lesson_progress.completed = ?", userID, courseID, true).
		Count(&count).Error
	return count, err
}
