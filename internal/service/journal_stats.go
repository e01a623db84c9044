package service

import (
	"math"
	"sort"
	"time"

	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/util"
)

// StreakSummary is derived from the full entry list on every read or
// mutation; nothing here is persisted.
// swagger:model StreakSummary
type StreakSummary struct {
	Current   int `json:"current"`
	Longest   int `json:"longest"`
	ThisMonth int `json:"thisMonth"`
}

// MoodAnalysis is derived from the full entry list. Entries without a mood
// are excluded from Counts, Total and Average.
// swagger:model MoodAnalysis
type MoodAnalysis struct {
	Counts  map[int]int `json:"counts"`
	Average float64     `json:"average"`
	Total   int         `json:"total"`
}

// PromptOfDay tags the selected prompt with the day-of-year as its id and the
// date-only ISO string.
// swagger:model PromptOfDay
type PromptOfDay struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

// dateOnly truncates t to its calendar date. All day comparisons in this file
// go through here, so streak math is consistent regardless of time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier) / (24 * time.Hour))
}

// ComputeStreak derives the current streak, longest streak and this-month
// entry count from entries as of asOf.
//
// Current streak rules: the run is anchored at asOf when there is an entry
// that day, or at asOf-1 when today has no entry yet; each earlier unique
// date must be exactly one day before the previous to extend the run. A most
// recent entry two or more days old means the streak is 0.
//
// ThisMonth counts entries, not days: several entries on one date each count.
func ComputeStreak(entries []model.JournalEntry, asOf time.Time) StreakSummary {
	if len(entries) == 0 {
		return StreakSummary{}
	}

	today := dateOnly(asOf)

	thisMonth := 0
	seen := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		d := dateOnly(e.CreatedAt)
		seen[d] = true
		if e.CreatedAt.Year() == asOf.Year() && e.CreatedAt.Month() == asOf.Month() {
			thisMonth++
		}
	}

	// Unique dates, newest first.
	uniqueDates := make([]time.Time, 0, len(seen))
	for d := range seen {
		uniqueDates = append(uniqueDates, d)
	}
	sort.Slice(uniqueDates, func(i, j int) bool {
		return uniqueDates[i].After(uniqueDates[j])
	})

	current := 0
	anchor := today
	if uniqueDates[0].Equal(today) {
		current = 1
	} else if uniqueDates[0].Equal(today.AddDate(0, 0, -1)) {
		anchor = today.AddDate(0, 0, -1)
		current = 1
	}
	if current > 0 {
		for i := 1; i < len(uniqueDates); i++ {
			if uniqueDates[i].Equal(anchor.AddDate(0, 0, -i)) {
				current++
			} else {
				break
			}
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(uniqueDates); i++ {
		if daysBetween(uniqueDates[i-1], uniqueDates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return StreakSummary{Current: current, Longest: longest, ThisMonth: thisMonth}
}

// AnalyzeMood returns nil for an empty entry list; callers must handle the
// absence. When entries exist but none carry a mood, Average is 0 with Total
// 0 rather than NaN.
func AnalyzeMood(entries []model.JournalEntry) *MoodAnalysis {
	if len(entries) == 0 {
		return nil
	}

	counts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	total := 0
	sum := 0
	for _, e := range entries {
		if e.Mood == nil {
			continue
		}
		counts[*e.Mood]++
		total++
		sum += *e.Mood
	}

	average := 0.0
	if total > 0 {
		average = math.Round(float64(sum)/float64(total)*10) / 10
	}

	return &MoodAnalysis{Counts: counts, Average: average, Total: total}
}

// SelectPrompt picks the prompt for date by indexing the fixed list with the
// 1-based day of year. The same calendar date always yields the same prompt
// for a fixed list; the cycle restarts every January 1st, and changing the
// list length reassigns prompts to dates.
func SelectPrompt(date time.Time, prompts []model.JournalPrompt) (PromptOfDay, error) {
	if len(prompts) == 0 {
		return PromptOfDay{}, util.ErrNoPromptsConfigured
	}

	dayOfYear := date.YearDay()
	idx := dayOfYear % len(prompts)

	return PromptOfDay{
		ID:   dayOfYear,
		Text: prompts[idx].Text,
		Date: dateOnly(date).Format("2006-01-02"),
	}, nil
}
