package service

import (
	"time"

	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/repository"
)

// AnalyticsService assembles the admin dashboard from live SQL aggregates.
type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
	BroadcastRepo *repository.BroadcastRepository
	Now           func() time.Time
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, broadcastRepo *repository.BroadcastRepository) *AnalyticsService {
	return &AnalyticsService{
		AnalyticsRepo: analyticsRepo,
		BroadcastRepo: broadcastRepo,
		Now:           time.Now,
	}
}

type AnalyticsOverview struct {
	TotalMembers        int64                  `json:"totalMembers"`
	ActiveMembers       int64                  `json:"activeMembers"`
	MembersPerTier      []repository.TierCount `json:"membersPerTier"`
	TotalPosts          int64                  `json:"totalPosts"`
	TotalJournalEntries int64                  `json:"totalJournalEntries"`
	BroadcastsSent      int64                  `json:"broadcastsSent"`
	BroadcastsScheduled int64                  `json:"broadcastsScheduled"`
}

type EngagementDetail struct {
	SignupsPerDay        []repository.DayCount `json:"signupsPerDay"`
	JournalEntriesPerDay []repository.DayCount `json:"journalEntriesPerDay"`
}

func (s *AnalyticsService) Overview() (*AnalyticsOverview, error) {
	overview := &AnalyticsOverview{}
	var err error

	if overview.TotalMembers, err = s.AnalyticsRepo.TotalMembers(); err != nil {
		return nil, err
	}
	if overview.ActiveMembers, err = s.AnalyticsRepo.ActiveMembers(s.Now().Add(-7 * 24 * time.Hour)); err != nil {
		return nil, err
	}
	if overview.MembersPerTier, err = s.AnalyticsRepo.MembersPerTier(); err != nil {
		return nil, err
	}
	if overview.TotalPosts, err = s.AnalyticsRepo.TotalPosts(); err != nil {
		return nil, err
	}
	if overview.TotalJournalEntries, err = s.AnalyticsRepo.TotalJournalEntries(); err != nil {
		return nil, err
	}
	if overview.BroadcastsSent, err = s.BroadcastRepo.CountByStatus(model.BroadcastSent); err != nil {
		return nil, err
	}
	if overview.BroadcastsScheduled, err = s.BroadcastRepo.CountByStatus(model.BroadcastScheduled); err != nil {
		return nil, err
	}

	return overview, nil
}

func (s *AnalyticsService) Engagement(days int) (*EngagementDetail, error) {
	if days <= 0 {
		days = 30
	}
	since := s.Now().AddDate(0, 0, -days)

	detail := &EngagementDetail{}
	var err error

	if detail.SignupsPerDay, err = s.AnalyticsRepo.SignupsPerDay(since); err != nil {
		return nil, err
	}
	if detail.JournalEntriesPerDay, err = s.AnalyticsRepo.JournalEntriesPerDay(since); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *AnalyticsService) CourseCompletions() ([]repository.CourseCompletion, error) {
	return s.AnalyticsRepo.CourseCompletions()
}
