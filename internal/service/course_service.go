package service

import (
	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/repository"
	"chef_brigade_backend/internal/util"
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, progressRepo *repository.ProgressRepository) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
	}
}

// CourseListItem augments a course with the caller's access and progress.
type CourseListItem struct {
	model.Course
	Locked           bool    `json:"locked"`
	LessonCount      int64   `json:"lessonCount"`
	CompletedLessons int64   `json:"completedLessons"`
	Progress         float64 `json:"progress"`
}

type ProgressRequest struct {
	WatchedSeconds int  `json:"watchedSeconds" binding:"min=0"`
	Completed      bool `json:"completed"`
}

// ListCourses returns published courses with a per-caller locked flag.
// Locked courses remain listed so the member can see what an upgrade buys.
func (s *CourseService) ListCourses(userID uint, userTier model.Tier) ([]CourseListItem, error) {
	courses, err := s.CourseRepo.ListPublished()
	if err != nil {
		return nil, err
	}

	items := make([]CourseListItem, 0, len(courses))
	for _, course := range courses {
		item := CourseListItem{
			Course: course,
			Locked: !model.HasAccess(userTier, course.RequiredTier),
		}
		item.LessonCount, _ = s.CourseRepo.CountLessons(course.ID)
		if userID != 0 && !item.Locked && item.LessonCount > 0 {
			item.CompletedLessons, _ = s.ProgressRepo.CountCompleted(userID, course.ID)
			item.Progress = float64(item.CompletedLessons) / float64(item.LessonCount)
		}
		items = append(items, item)
	}
	return items, nil
}

// GetCourse returns the course with lessons and the caller's progress.
// Callers whose tier fails the gate get ErrTierRequired.
func (s *CourseService) GetCourse(courseID, userID uint, userTier model.Tier) (*model.Course, []model.LessonProgress, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, nil, util.ErrCourseNotFound
	}
	if !course.Published {
		return nil, nil, util.ErrCourseNotFound
	}

	if !model.HasAccess(userTier, course.RequiredTier) {
		return nil, nil, util.ErrTierRequired
	}

	progress, err := s.ProgressRepo.ListByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, nil, err
	}
	return course, progress, nil
}

// RecordProgress upserts watch progress for a lesson. A lesson is completed
// when explicitly flagged or when at least 90% of its duration was watched.
func (s *CourseService) RecordProgress(userID uint, userTier model.Tier, lessonID uint, req ProgressRequest) (*model.LessonProgress, error) {
	lesson, err := s.CourseRepo.FindLesson(lessonID)
	if err != nil {
		return nil, util.ErrLessonNotFound
	}

	course, err := s.CourseRepo.FindByID(lesson.CourseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	if !model.HasAccess(userTier, course.RequiredTier) {
		return nil, util.ErrTierRequired
	}

	completed := req.Completed
	if !completed && lesson.DurationSeconds > 0 {
		completed = float64(req.WatchedSeconds) >= 0.9*float64(lesson.DurationSeconds)
	}

	progress := &model.LessonProgress{
		UserID:         userID,
		LessonID:       lessonID,
		WatchedSeconds: req.WatchedSeconds,
		Completed:      completed,
	}
	if err := s.ProgressRepo.Upsert(progress); err != nil {
		return nil, err
	}

	return s.ProgressRepo.Find(userID, lessonID)
}

type CourseRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	CoverURL     string     `json:"coverUrl"`
	RequiredTier model.Tier `json:"requiredTier"`
	Published    bool       `json:"published"`
	Position     int        `json:"position"`
}

type LessonRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	VideoURL        string `json:"videoUrl"`
	DurationSeconds int    `json:"durationSeconds"`
	Position        int    `json:"position"`
}

func (s *CourseService) CreateCourse(req CourseRequest) (*model.Course, error) {
	tier := req.RequiredTier
	if tier == "" {
		tier = model.TierFree
	}
	if !tier.Valid() {
		return nil, util.ErrUnknownTier
	}

	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		CoverURL:     req.CoverURL,
		RequiredTier: tier,
		Published:    req.Published,
		Position:     req.Position,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) AddLesson(courseID uint, req LessonRequest) (*model.Lesson, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return nil, util.ErrCourseNotFound
	}

	lesson := &model.Lesson{
		CourseID:        courseID,
		Title:           req.Title,
		Description:     req.Description,
		VideoURL:        req.VideoURL,
		DurationSeconds: req.DurationSeconds,
		Position:        req.Position,
	}
	if err := s.CourseRepo.CreateLesson(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}
