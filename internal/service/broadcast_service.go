package service

import (
	"strings"
	"time"

	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/repository"
	"chef_brigade_backend/internal/util"
	"chef_brigade_backend/pkg/logger"
	"chef_brigade_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// BroadcastService owns the admin announcement pipeline: draft, schedule,
// and cron-driven dispatch. Delivery over push/email/sms is handed to
// external channels; this service only records who should receive what.
type BroadcastService struct {
	BroadcastRepo    *repository.BroadcastRepository
	NotificationRepo *repository.NotificationRepository
	UserRepo         *repository.UserRepository
	Now              func() time.Time
}

func NewBroadcastService(
	broadcastRepo *repository.BroadcastRepository,
	notificationRepo *repository.NotificationRepository,
	userRepo *repository.UserRepository,
) *BroadcastService {
	return &BroadcastService{
		BroadcastRepo:    broadcastRepo,
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		Now:              time.Now,
	}
}

type BroadcastRequest struct {
	Title    string   `json:"title" binding:"required"`
	Body     string   `json:"body" binding:"required"`
	Audience string   `json:"audience"` // "all" or a minimum tier
	Channels []string `json:"channels"`
}

type ScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

func validAudience(audience string) bool {
	if audience == model.AudienceAll {
		return true
	}
	return model.Tier(audience).Valid()
}

func (s *BroadcastService) CreateBroadcast(adminID uint, req BroadcastRequest) (*model.Broadcast, error) {
	audience := req.Audience
	if audience == "" {
		audience = model.AudienceAll
	}
	if !validAudience(audience) {
		return nil, util.ErrUnknownTier
	}

	channels := req.Channels
	if len(channels) == 0 {
		channels = []string{"push"}
	}

	b := &model.Broadcast{
		Title:     req.Title,
		Body:      req.Body,
		Audience:  audience,
		Channels:  strings.Join(channels, ","),
		Status:    model.BroadcastDraft,
		CreatedBy: adminID,
	}
	if err := s.BroadcastRepo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BroadcastService) UpdateBroadcast(id uint, req BroadcastRequest) (*model.Broadcast, error) {
	b, err := s.BroadcastRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrBroadcastNotFound
	}
	if b.Status == model.BroadcastSent {
		return nil, util.ErrBroadcastNotDraft
	}

	if !validAudience(req.Audience) && req.Audience != "" {
		return nil, util.ErrUnknownTier
	}

	b.Title = req.Title
	b.Body = req.Body
	if req.Audience != "" {
		b.Audience = req.Audience
	}
	if len(req.Channels) > 0 {
		b.Channels = strings.Join(req.Channels, ",")
	}
	if err := s.BroadcastRepo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BroadcastService) DeleteBroadcast(id uint) error {
	b, err := s.BroadcastRepo.FindByID(id)
	if err != nil {
		return util.ErrBroadcastNotFound
	}
	if b.Status == model.BroadcastSent {
		return util.ErrBroadcastNotDraft
	}
	return s.BroadcastRepo.Delete(id)
}

func (s *BroadcastService) ListBroadcasts(page, limit int) ([]model.Broadcast, int64, error) {
	return s.BroadcastRepo.List(page, limit)
}

// Schedule queues a draft for dispatch at a future time.
func (s *BroadcastService) Schedule(id uint, req ScheduleRequest) (*model.Broadcast, error) {
	b, err := s.BroadcastRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrBroadcastNotFound
	}
	if b.Status != model.BroadcastDraft {
		return nil, util.ErrBroadcastNotDraft
	}
	if !req.ScheduledAt.After(s.Now()) {
		return nil, util.ErrScheduleInPast
	}

	scheduledAt := req.ScheduledAt
	b.ScheduledAt = &scheduledAt
	b.Status = model.BroadcastScheduled
	if err := s.BroadcastRepo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// SendNow dispatches immediately, bypassing the scheduler.
func (s *BroadcastService) SendNow(id uint) (*model.Broadcast, error) {
	b, err := s.BroadcastRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrBroadcastNotFound
	}
	if b.Status == model.BroadcastSent {
		return nil, util.ErrBroadcastNotDraft
	}
	if err := s.dispatch(b); err != nil {
		return nil, err
	}
	return b, nil
}

// DispatchDue is the cron entrypoint: send every scheduled broadcast whose
// time has arrived.
func (s *BroadcastService) DispatchDue() error {
	due, err := s.BroadcastRepo.FindDue(s.Now())
	if err != nil {
		return err
	}

	for i := range due {
		if err := s.dispatch(&due[i]); err != nil {
			logger.Log.Error("broadcast dispatch failed",
				zap.Uint("broadcastID", due[i].ID), zap.Error(err))
		}
	}
	return nil
}

// audienceIDs segments members for a broadcast: "all" reaches everyone,
// otherwise the audience is a minimum tier and members at or above it are
// included.
func (s *BroadcastService) audienceIDs(b *model.Broadcast) ([]uint, error) {
	if b.Audience == model.AudienceAll {
		return s.UserRepo.FindIDsByTiers(nil)
	}
	return s.UserRepo.FindIDsByTiers(model.TiersAtOrAbove(model.Tier(b.Audience)))
}

func (s *BroadcastService) dispatch(b *model.Broadcast) error {
	recipients, err := s.audienceIDs(b)
	if err != nil {
		return err
	}

	notifications := make([]model.Notification, 0, len(recipients))
	for _, userID := range recipients {
		notifications = append(notifications, model.Notification{
			UserID:      userID,
			BroadcastID: b.ID,
			Title:       b.Title,
			Body:        b.Body,
		})
	}
	if err := s.NotificationRepo.CreateBatch(notifications); err != nil {
		return err
	}

	// External channel delivery is out of scope; record the handoff.
	logger.Log.Info("broadcast handed to delivery channels",
		zap.Uint("broadcastID", b.ID),
		zap.String("channels", b.Channels),
		zap.Int("recipients", len(recipients)))
	monitoring.BroadcastsDispatched.Inc()

	now := s.Now()
	b.Status = model.BroadcastSent
	b.SentAt = &now
	b.RecipientCount = len(recipients)
	return s.BroadcastRepo.Update(b)
}

// Notifications lists a member's received broadcasts.
func (s *BroadcastService) Notifications(userID uint, page, limit int) ([]model.Notification, int64, error) {
	return s.NotificationRepo.ListByUser(userID, page, limit)
}

func (s *BroadcastService) MarkNotificationRead(userID, notificationID uint) error {
	return s.NotificationRepo.MarkRead(userID, notificationID)
}

func (s *BroadcastService) UnreadCount(userID uint) (int64, error) {
	return s.NotificationRepo.CountUnread(userID)
}
