package model

import (
	"time"
)

type BroadcastStatus string

const (
	BroadcastDraft     BroadcastStatus = "draft"
	BroadcastScheduled BroadcastStatus = "scheduled"
	BroadcastSent      BroadcastStatus = "sent"
)

// AudienceAll targets every member regardless of tier. Any other audience
// value is a minimum tier: members at that tier or above receive the
// broadcast.
const AudienceAll = "all"

// Broadcast is an admin-authored announcement delivered to a tier-segmented
// audience through opaque external channels (push/email/sms).
// swagger:model Broadcast
type Broadcast struct {
	BaseModel
	Title          string          `gorm:"size:255;not null" json:"title"`
	Body           string          `gorm:"type:text;not null" json:"body"`
	Audience       string          `gorm:"size:20;default:'all'" json:"audience"`
	Channels       string          `gorm:"size:100;default:'push'" json:"channels"` // comma-separated: push,email,sms
	Status         BroadcastStatus `gorm:"size:20;default:'draft'" json:"status"`
	ScheduledAt    *time.Time      `json:"scheduledAt"`
	SentAt         *time.Time      `json:"sentAt"`
	RecipientCount int             `gorm:"default:0" json:"recipientCount"`
	CreatedBy      uint            `gorm:"index;type:bigint unsigned" json:"createdBy"`
}

func (Broadcast) TableName() string {
	return "broadcasts"
}

// Notification is the per-member record created when a broadcast is
// dispatched. Actual channel delivery happens outside this service.
// swagger:model Notification
type Notification struct {
	BaseModel
	UserID      uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	BroadcastID uint   `gorm:"index;type:bigint unsigned" json:"broadcastId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Body        string `gorm:"type:text" json:"body"`
	Read        bool   `gorm:"default:false" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
