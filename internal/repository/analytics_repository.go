package repository

import (
	"time"

	"chef_brigade_backend/internal/model"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the read-only aggregate queries behind the admin
// dashboard. Everything is computed in SQL over live rows.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

type TierCount struct {
	Tier  model.Tier `json:"tier"`
	Count int64      `json:"count"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type CourseCompletion struct {
	CourseID   uint    `json:"courseId"`
	Title      string  `json:"title"`
	Started    int64   `json:"started"`
	Completed  int64   `json:"completed"`
	Completion float64 `json:"completion"`
}

func (r *AnalyticsRepository) MembersPerTier() ([]TierCount, error) {
	var counts []TierCount
	err := r.DB.Model(&model.User{}).
		Select("tier, COUNT(*) AS count").
		Where("disabled = ?", false).
		Group("tier").
		Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepository) SignupsPerDay(since time.Time) ([]DayCount, error) {
	var counts []DayCount
	err := r.DB.Model(&model.User{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepository) ActiveMembers(since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("last_seen >= ? AND disabled = ?", since, false).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) JournalEntriesPerDay(since time.Time) ([]DayCount, error) {
	var counts []DayCount
	err := r.DB.Model(&model.JournalEntry{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&counts).Error
	return counts, err
}

// CourseCompletions reports, per published course, how many members started
// any lesson and how many completed every lesson.
func (r *AnalyticsRepository) CourseCompletions() ([]CourseCompletion, error) {
	var rows []CourseCompletion
	err := r.DB.Raw(`
		SELECT c.id AS course_id,
		       c.title,
		       COUNT(DISTINCT lp.user_id) AS started,
		       COUNT(DISTINCT done.user_id) AS completed
		FROM courses c
		LEFT JOIN lessons l ON l.course_id = c.id AND l.deleted_at IS NULL
		LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id AND lp.deleted_at IS NULL
		LEFT JOIN (
			SELECT l2.course_id, lp2.user_id
			FROM lesson_progress lp2
			JOIN lessons l2 ON l2.id = lp2.lesson_id AND l2.deleted_at IS NULL
			WHERE lp2.completed = 1 AND lp2.deleted_at IS NULL
			GROUP BY l2.course_id, lp2.user_id
			HAVING COUNT(*) = (
				SELECT COUNT(*) FROM lessons l3
				WHERE l3.course_id = l2.course_id AND l3.deleted_at IS NULL
			)
		) done ON done.course_id = c.id
		WHERE c.published = 1 AND c.deleted_at IS NULL
		GROUP BY c.id, c.title
		ORDER BY c.position ASC, c.id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].Started > 0 {
			rows[i].Completion = float64(rows[i].Completed) / float64(rows[i].Started)
		}
	}
	return rows, nil
}

func (r *AnalyticsRepository) TotalMembers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) TotalPosts() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) TotalJournalEntries() (int64, error) {
	var count int64
	err := r.DB.Model(&model.JournalEntry{}).Count(&count).Error
	return count, err
}
