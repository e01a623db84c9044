package model

import (
	"time"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title        string   `gorm:"size:255;not null" json:"title"`
	Description  string   `gorm:"type:text" json:"description"`
	CoverURL     string   `gorm:"size:255" json:"coverUrl"`
	RequiredTier Tier     `gorm:"type:enum('free','brigade','fraternity','guild');default:'free'" json:"requiredTier"`
	Published    bool     `gorm:"default:false" json:"published"`
	Position     int      `gorm:"default:0" json:"position"`
	Lessons      []Lesson `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Lesson holds an opaque external player URL; no media is hosted or
// transcoded here.
// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID        uint   `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	VideoURL        string `gorm:"size:255" json:"videoUrl"`
	DurationSeconds int    `gorm:"default:0" json:"durationSeconds"`
	Position        int    `gorm:"default:0" json:"position"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// LessonProgress is unique per user+lesson; writes are upserts.
// swagger:model LessonProgress
type LessonProgress struct {
	BaseModel
	UserID         uint      `gorm:"uniqueIndex:idx_user_lesson;type:bigint unsigned;not null" json:"userId"`
	LessonID       uint      `gorm:"uniqueIndex:idx_user_lesson;type:bigint unsigned;not null" json:"lessonId"`
	WatchedSeconds int       `gorm:"default:0" json:"watchedSeconds"`
	Completed      bool      `gorm:"default:false" json:"completed"`
	LastWatchedAt  time.Time `json:"lastWatchedAt"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
