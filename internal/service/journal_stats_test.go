package service

import (
	"testing"
	"time"

	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moodPtr(m int) *int { return &m }

func entryAt(at time.Time, mood *int) model.JournalEntry {
	return model.JournalEntry{
		ID:        model.GenerateUUID(),
		UserID:    1,
		Content:   "mise en place",
		Mood:      mood,
		CreatedAt: at,
	}
}

func TestComputeStreakEmpty(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, StreakSummary{}, ComputeStreak(nil, asOf))
}

func TestComputeStreakTodayOnly(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{entryAt(asOf.Add(-2*time.Hour), nil)}

	got := ComputeStreak(entries, asOf)
	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 1, got.Longest)
	assert.Equal(t, 1, got.ThisMonth)
}

func TestComputeStreakAnchorsOnYesterday(t *testing.T) {
	// No entry today yet: yesterday still carries the streak.
	asOf := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{
		entryAt(time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 13, 7, 0, 0, 0, time.UTC), nil),
	}

	got := ComputeStreak(entries, asOf)
	assert.Equal(t, 2, got.Current)
}

func TestComputeStreakBrokenByGap(t *testing.T) {
	// Most recent entry is two days old: the streak is gone.
	asOf := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{
		entryAt(time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC), nil),
	}

	got := ComputeStreak(entries, asOf)
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 2, got.Longest)
}

func TestComputeStreakConsecutiveRun(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{
		entryAt(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC), nil),
		// Gap: the 11th is missing.
		entryAt(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), nil),
	}

	got := ComputeStreak(entries, asOf)
	assert.Equal(t, 3, got.Current)
	assert.Equal(t, 3, got.Longest)
}

func TestComputeStreakLongestAcrossOldRuns(t *testing.T) {
	// Days 1-3 and 7-8 of the month, viewed from much later: longest run of
	// consecutive days wins even though the current streak is dead.
	asOf := time.Date(2026, 3, 25, 12, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{
		entryAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC), nil),
	}

	got := ComputeStreak(entries, asOf)
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 3, got.Longest)
	assert.Equal(t, 5, got.ThisMonth)
}

func TestComputeStreakDedupesDaysButCountsEntries(t *testing.T) {
	// Two entries on the same day extend the streak once but ThisMonth twice.
	asOf := time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{
		entryAt(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), nil),
		entryAt(time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), nil),
	}

	got := ComputeStreak(entries, asOf)
	assert.Equal(t, 2, got.Current)
	assert.Equal(t, 3, got.ThisMonth)
}

func TestAnalyzeMoodEmpty(t *testing.T) {
	assert.Nil(t, AnalyzeMood(nil))
	assert.Nil(t, AnalyzeMood([]model.JournalEntry{}))
}

func TestAnalyzeMoodNoMoodsRecorded(t *testing.T) {
	now := time.Now()
	entries := []model.JournalEntry{entryAt(now, nil), entryAt(now, nil)}

	got := AnalyzeMood(entries)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Total)
	assert.Equal(t, 0.0, got.Average)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, got.Counts)
}

func TestAnalyzeMoodAverageRounding(t *testing.T) {
	now := time.Now()
	entries := []model.JournalEntry{
		entryAt(now, moodPtr(5)),
		entryAt(now, moodPtr(5)),
		entryAt(now, moodPtr(4)),
		entryAt(now, nil), // moodless entries are excluded
	}

	got := AnalyzeMood(entries)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 4.7, got.Average) // 14/3 = 4.66..., rounds half up to one decimal
	assert.Equal(t, 2, got.Counts[5])
	assert.Equal(t, 1, got.Counts[4])
	assert.Equal(t, 0, got.Counts[3])
}

func TestSelectPromptDeterministic(t *testing.T) {
	prompts := []model.JournalPrompt{
		{ID: 1, Text: "What did you taste today?"},
		{ID: 2, Text: "Describe a kitchen win."},
		{ID: 3, Text: "What would you redo?"},
	}

	morning := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)

	a, err := SelectPrompt(morning, prompts)
	require.NoError(t, err)
	b, err := SelectPrompt(evening, prompts)
	require.NoError(t, err)

	// Same calendar date, same prompt, regardless of time of day.
	assert.Equal(t, a, b)
	assert.Equal(t, morning.YearDay(), a.ID)
	assert.Equal(t, "2026-03-01", a.Date)
	assert.Equal(t, prompts[morning.YearDay()%len(prompts)].Text, a.Text)
}

func TestSelectPromptCyclesWithListLength(t *testing.T) {
	prompts := []model.JournalPrompt{
		{ID: 1, Text: "one"},
		{ID: 2, Text: "two"},
	}

	day1, err := SelectPrompt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), prompts)
	require.NoError(t, err)
	day2, err := SelectPrompt(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), prompts)
	require.NoError(t, err)
	day3, err := SelectPrompt(time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), prompts)
	require.NoError(t, err)

	assert.Equal(t, "two", day1.Text) // day 1 % 2 == 1
	assert.Equal(t, "one", day2.Text)
	assert.Equal(t, "two", day3.Text)
}

func TestSelectPromptNoPrompts(t *testing.T) {
	_, err := SelectPrompt(time.Now(), nil)
	assert.ErrorIs(t, err, util.ErrNoPromptsConfigured)
}
