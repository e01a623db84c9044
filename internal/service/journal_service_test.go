package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

var errStoreDown = errors.New("store down")

// memStore is an in-memory JournalMirror used as both tiers in these tests.
type memStore struct {
	entries map[uint][]model.JournalEntry
	fail    bool
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[uint][]model.JournalEntry)}
}

func (m *memStore) List(ctx context.Context, userID uint) ([]model.JournalEntry, error) {
	if m.fail {
		return nil, errStoreDown
	}
	out := make([]model.JournalEntry, len(m.entries[userID]))
	copy(out, m.entries[userID])
	return out, nil
}

func (m *memStore) Insert(ctx context.Context, entry *model.JournalEntry) error {
	if m.fail {
		return errStoreDown
	}
	m.entries[entry.UserID] = append(m.entries[entry.UserID], *entry)
	return nil
}

func (m *memStore) Save(ctx context.Context, entry *model.JournalEntry) error {
	if m.fail {
		return errStoreDown
	}
	list := m.entries[entry.UserID]
	for i := range list {
		if list[i].ID == entry.ID {
			list[i] = *entry
			return nil
		}
	}
	return errors.New("entry not found")
}

func (m *memStore) Delete(ctx context.Context, userID uint, entryID string) error {
	if m.fail {
		return errStoreDown
	}
	list := m.entries[userID]
	kept := list[:0]
	for _, e := range list {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	m.entries[userID] = kept
	return nil
}

func (m *memStore) Replace(ctx context.Context, userID uint, entries []model.JournalEntry) error {
	if m.fail {
		return errStoreDown
	}
	cp := make([]model.JournalEntry, len(entries))
	copy(cp, entries)
	m.entries[userID] = cp
	return nil
}

func newTestJournalService(primary, fallback *memStore) *JournalService {
	s := NewJournalService(primary, fallback, nil)
	s.Now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestJournalCreateRoundTrip(t *testing.T) {
	primary := newMemStore()
	fallback := newMemStore()
	s := newTestJournalService(primary, fallback)

	view, err := s.CreateEntry(context.Background(), 7, CreateEntryRequest{
		Content: "plated the first service solo",
		Mood:    moodPtr(5),
	})
	require.NoError(t, err)
	require.NotNil(t, view.Entry)
	assert.False(t, view.Degraded)
	assert.NotEmpty(t, view.Entry.ID)

	list, err := s.ListEntries(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list.Entries, 1)
	assert.Equal(t, "plated the first service solo", list.Entries[0].Content)
	require.NotNil(t, list.Entries[0].Mood)
	assert.Equal(t, 5, *list.Entries[0].Mood)

	// A successful primary write refreshes the mirror too.
	assert.Len(t, fallback.entries[7], 1)
}

func TestJournalCreateFallsBackWhenPrimaryDown(t *testing.T) {
	primary := newMemStore()
	primary.fail = true
	fallback := newMemStore()
	s := newTestJournalService(primary, fallback)

	view, err := s.CreateEntry(context.Background(), 7, CreateEntryRequest{Content: "offline note"})
	require.NoError(t, err)
	assert.True(t, view.Degraded)
	assert.Len(t, fallback.entries[7], 1)

	// Reads keep working against the cache while the primary is down.
	list, err := s.ListEntries(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, list.Degraded)
	require.Len(t, list.Entries, 1)
	assert.Equal(t, "offline note", list.Entries[0].Content)
}

func TestJournalCreateValidation(t *testing.T) {
	s := newTestJournalService(newMemStore(), newMemStore())

	_, err := s.CreateEntry(context.Background(), 7, CreateEntryRequest{Content: ""})
	assert.Error(t, err)

	_, err = s.CreateEntry(context.Background(), 7, CreateEntryRequest{Content: "x", Mood: moodPtr(6)})
	assert.Error(t, err)

	_, err = s.CreateEntry(context.Background(), 7, CreateEntryRequest{Content: "x", Mood: moodPtr(0)})
	assert.Error(t, err)
}

func TestJournalUpdateKeepsEntryDate(t *testing.T) {
	primary := newMemStore()
	fallback := newMemStore()
	s := newTestJournalService(primary, fallback)

	created, err := s.CreateEntry(context.Background(), 7, CreateEntryRequest{Content: "v1", Mood: moodPtr(3)})
	require.NoError(t, err)
	originalCreatedAt := created.Entry.CreatedAt

	later := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return later }

	content := "v2"
	updated, err := s.UpdateEntry(context.Background(), 7, created.Entry.ID, UpdateEntryRequest{
		Content:   &content,
		ClearMood: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Entry.Content)
	assert.Nil(t, updated.Entry.Mood)
	assert.True(t, updated.Entry.CreatedAt.Equal(originalCreatedAt), "entry date must not move on edit")
	assert.True(t, updated.Entry.UpdatedAt.Equal(later))
}

func TestJournalUpdateUnknownEntry(t *testing.T) {
	s := newTestJournalService(newMemStore(), newMemStore())

	content := "ghost"
	_, err := s.UpdateEntry(context.Background(), 7, "no-such-id", UpdateEntryRequest{Content: &content})
	assert.Error(t, err)
}

func TestJournalDeleteIdempotent(t *testing.T) {
	primary := newMemStore()
	fallback := newMemStore()
	s := newTestJournalService(primary, fallback)

	created, err := s.CreateEntry(context.Background(), 7, CreateEntryRequest{Content: "to be removed"})
	require.NoError(t, err)

	view, err := s.DeleteEntry(context.Background(), 7, created.Entry.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Entries)
	assert.Empty(t, primary.entries[7])
	assert.Empty(t, fallback.entries[7])

	// Deleting again, or deleting an id that never existed, is a no-op.
	view, err = s.DeleteEntry(context.Background(), 7, created.Entry.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Entries)

	view, err = s.DeleteEntry(context.Background(), 7, "never-existed")
	require.NoError(t, err)
	assert.Empty(t, view.Entries)
}

func TestJournalDeleteAppliesToCacheWhenPrimaryDown(t *testing.T) {
	primary := newMemStore()
	fallback := newMemStore()
	s := newTestJournalService(primary, fallback)

	created, err := s.CreateEntry(context.Background(), 7, CreateEntryRequest{Content: "note"})
	require.NoError(t, err)

	primary.fail = true
	view, err := s.DeleteEntry(context.Background(), 7, created.Entry.ID)
	require.NoError(t, err)
	assert.True(t, view.Degraded)
	assert.Empty(t, fallback.entries[7], "cache must drop the entry even when the primary is down")
	assert.Empty(t, view.Entries)
}

func TestJournalStatsViewsDerivedData(t *testing.T) {
	primary := newMemStore()
	s := newTestJournalService(primary, newMemStore())

	_, err := s.CreateEntry(context.Background(), 7, CreateEntryRequest{Content: "today", Mood: moodPtr(4)})
	require.NoError(t, err)

	stats, err := s.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, stats.Entries, "stats view carries no entry payload")
	assert.Equal(t, 1, stats.Streak.Current)
	require.NotNil(t, stats.Mood)
	assert.Equal(t, 4.0, stats.Mood.Average)
}
