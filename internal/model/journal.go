package model

import (
	"time"
)

// JournalEntry is a dated, mood-rated, privacy-flagged text entry. IDs are
// UUID strings so the fallback cache can assign them while the primary store
// is unreachable. CreatedAt is set once at creation and never mutated by
// edits; streak math depends on it.
//
// More than one entry per calendar day is tolerated: the streak calculation
// dedupes by date, month and mood counts do not.
// swagger:model JournalEntry
type JournalEntry struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Mood      *int      `gorm:"type:tinyint" json:"mood,omitempty"` // 1-5, nil when not rated
	PromptID  *int      `json:"promptId,omitempty"`                 // day-of-year of the prompt shown, informational
	IsPrivate bool      `gorm:"default:false" json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// JournalPrompt is one row of the fixed daily prompt list, seeded at
// migration and selected by day-of-year.
// swagger:model JournalPrompt
type JournalPrompt struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"size:500;not null" json:"text"`
	Enabled   bool      `gorm:"default:true" json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
}

func (JournalPrompt) TableName() string {
	return "journal_prompts"
}
