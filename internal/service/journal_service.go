package service

import (
	"context"
	"time"

	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/repository"
	"chef_brigade_backend/internal/util"
	"chef_brigade_backend/pkg/logger"
	"chef_brigade_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// JournalStore is the contract shared by the authoritative store and the
// fallback cache.
type JournalStore interface {
	List(ctx context.Context, userID uint) ([]model.JournalEntry, error)
	Insert(ctx context.Context, entry *model.JournalEntry) error
	Save(ctx context.Context, entry *model.JournalEntry) error
	Delete(ctx context.Context, userID uint, entryID string) error
}

// JournalMirror additionally supports wholesale replacement, used to refresh
// the mirror after a successful primary mutation.
type JournalMirror interface {
	JournalStore
	Replace(ctx context.Context, userID uint, entries []model.JournalEntry) error
}

// JournalService owns journal entries across a two-tier store. The primary
// store is authoritative whenever reachable; each successful primary mutation
// rewrites the mirror. When the primary fails, the operation is applied to
// the mirror only and the result is marked degraded so callers can surface a
// warning. The two stores are never reconciled.
type JournalService struct {
	Primary    JournalStore
	Fallback   JournalMirror
	PromptRepo *repository.PromptRepository
	Now        func() time.Time
}

func NewJournalService(primary JournalStore, fallback JournalMirror, promptRepo *repository.PromptRepository) *JournalService {
	return &JournalService{
		Primary:    primary,
		Fallback:   fallback,
		PromptRepo: promptRepo,
		Now:        time.Now,
	}
}

type CreateEntryRequest struct {
	Content   string `json:"content" binding:"required"`
	Mood      *int   `json:"mood"`
	PromptID  *int   `json:"promptId"`
	IsPrivate bool   `json:"isPrivate"`
}

type UpdateEntryRequest struct {
	Content   *string `json:"content"`
	Mood      *int    `json:"mood"`
	ClearMood bool    `json:"clearMood"`
	IsPrivate *bool   `json:"isPrivate"`
}

// JournalView bundles an operation's effect with the freshly recomputed
// derived stats. Degraded means the fallback cache served the operation.
type JournalView struct {
	Entry    *model.JournalEntry  `json:"entry,omitempty"`
	Entries  []model.JournalEntry `json:"entries,omitempty"`
	Streak   StreakSummary        `json:"streak"`
	Mood     *MoodAnalysis        `json:"mood"`
	Degraded bool                 `json:"degraded"`
}

func validMood(mood *int) bool {
	return mood == nil || (*mood >= 1 && *mood <= 5)
}

// loadEntries reads from the primary, falling back to the mirror when the
// primary is unreachable.
func (s *JournalService) loadEntries(ctx context.Context, userID uint) ([]model.JournalEntry, bool, error) {
	entries, err := s.Primary.List(ctx, userID)
	if err == nil {
		return entries, false, nil
	}

	logger.Log.Warn("journal primary list failed, using fallback cache",
		zap.Uint("userID", userID), zap.Error(err))
	monitoring.JournalFallback.WithLabelValues("list").Inc()

	entries, ferr := s.Fallback.List(ctx, userID)
	if ferr != nil {
		return nil, true, ferr
	}
	return entries, true, nil
}

// refreshMirror rewrites the fallback cache from the authoritative list.
// Best effort: a failed refresh is logged, not surfaced.
func (s *JournalService) refreshMirror(ctx context.Context, userID uint) {
	entries, err := s.Primary.List(ctx, userID)
	if err != nil {
		logger.Log.Warn("journal mirror refresh skipped", zap.Uint("userID", userID), zap.Error(err))
		return
	}
	if err := s.Fallback.Replace(ctx, userID, entries); err != nil {
		logger.Log.Warn("journal mirror refresh failed", zap.Uint("userID", userID), zap.Error(err))
	}
}

func (s *JournalService) view(entries []model.JournalEntry, entry *model.JournalEntry, degraded bool) *JournalView {
	return &JournalView{
		Entry:    entry,
		Entries:  entries,
		Streak:   ComputeStreak(entries, s.Now()),
		Mood:     AnalyzeMood(entries),
		Degraded: degraded,
	}
}

// ListEntries returns the member's entries, newest first, with derived stats.
func (s *JournalService) ListEntries(ctx context.Context, userID uint) (*JournalView, error) {
	entries, degraded, err := s.loadEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(entries, nil, degraded), nil
}

func (s *JournalService) CreateEntry(ctx context.Context, userID uint, req CreateEntryRequest) (*JournalView, error) {
	if req.Content == "" {
		return nil, util.ErrEmptyContent
	}
	if !validMood(req.Mood) {
		return nil, util.ErrInvalidMood
	}

	now := s.Now()
	entry := &model.JournalEntry{
		ID:        model.GenerateUUID(),
		UserID:    userID,
		Content:   req.Content,
		Mood:      req.Mood,
		PromptID:  req.PromptID,
		IsPrivate: req.IsPrivate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	degraded := false
	if err := s.Primary.Insert(ctx, entry); err != nil {
		logger.Log.Warn("journal primary insert failed, writing to fallback cache",
			zap.Uint("userID", userID), zap.Error(err))
		monitoring.JournalFallback.WithLabelValues("insert").Inc()
		degraded = true
		if ferr := s.Fallback.Insert(ctx, entry); ferr != nil {
			return nil, ferr
		}
	} else {
		s.refreshMirror(ctx, userID)
	}

	entries, _, err := s.listAfterMutation(ctx, userID, degraded)
	if err != nil {
		return nil, err
	}
	return s.view(entries, entry, degraded), nil
}

func (s *JournalService) UpdateEntry(ctx context.Context, userID uint, entryID string, req UpdateEntryRequest) (*JournalView, error) {
	if req.Content != nil && *req.Content == "" {
		return nil, util.ErrEmptyContent
	}
	if !validMood(req.Mood) {
		return nil, util.ErrInvalidMood
	}

	entries, degraded, err := s.loadEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	var entry *model.JournalEntry
	for i := range entries {
		if entries[i].ID == entryID {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		return nil, util.ErrEntryNotFound
	}

	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.ClearMood {
		entry.Mood = nil
	} else if req.Mood != nil {
		entry.Mood = req.Mood
	}
	if req.IsPrivate != nil {
		entry.IsPrivate = *req.IsPrivate
	}
	// CreatedAt is immutable; edits only move UpdatedAt.
	entry.UpdatedAt = s.Now()

	if !degraded {
		if err := s.Primary.Save(ctx, entry); err != nil {
			logger.Log.Warn("journal primary save failed, writing to fallback cache",
				zap.Uint("userID", userID), zap.Error(err))
			monitoring.JournalFallback.WithLabelValues("save").Inc()
			degraded = true
		} else {
			s.refreshMirror(ctx, userID)
		}
	}
	if degraded {
		if ferr := s.Fallback.Save(ctx, entry); ferr != nil {
			return nil, ferr
		}
	}

	entries, _, err = s.listAfterMutation(ctx, userID, degraded)
	if err != nil {
		return nil, err
	}
	return s.view(entries, entry, degraded), nil
}

// DeleteEntry removes an entry. The cache is always mutated, even when the
// primary delete fails, so the member's view stays consistent offline.
// Deleting an unknown id is a no-op.
func (s *JournalService) DeleteEntry(ctx context.Context, userID uint, entryID string) (*JournalView, error) {
	degraded := false
	if err := s.Primary.Delete(ctx, userID, entryID); err != nil {
		logger.Log.Warn("journal primary delete failed, applying to fallback cache only",
			zap.Uint("userID", userID), zap.Error(err))
		monitoring.JournalFallback.WithLabelValues("delete").Inc()
		degraded = true
	}

	if err := s.Fallback.Delete(ctx, userID, entryID); err != nil {
		if !degraded {
			// Primary succeeded; a stale mirror will be rewritten on the next
			// successful mutation.
			logger.Log.Warn("journal mirror delete failed", zap.Uint("userID", userID), zap.Error(err))
		} else {
			return nil, err
		}
	}

	entries, _, err := s.listAfterMutation(ctx, userID, degraded)
	if err != nil {
		return nil, err
	}
	return s.view(entries, nil, degraded), nil
}

// Stats recomputes the derived views without mutating anything.
func (s *JournalService) Stats(ctx context.Context, userID uint) (*JournalView, error) {
	entries, degraded, err := s.loadEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	v := s.view(entries, nil, degraded)
	v.Entries = nil
	return v, nil
}

// TodayPrompt returns the deterministic prompt for the current date.
func (s *JournalService) TodayPrompt() (PromptOfDay, error) {
	prompts, err := s.PromptRepo.ListEnabled()
	if err != nil {
		return PromptOfDay{}, err
	}
	return SelectPrompt(s.Now(), prompts)
}

// listAfterMutation re-reads the store that served the mutation so derived
// stats reflect what the member will see.
func (s *JournalService) listAfterMutation(ctx context.Context, userID uint, degraded bool) ([]model.JournalEntry, bool, error) {
	if degraded {
		entries, err := s.Fallback.List(ctx, userID)
		return entries, true, err
	}
	return s.loadEntries(ctx, userID)
}
