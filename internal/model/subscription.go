package model

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription tracks a member's paid tier. CheckoutRef is the opaque
// reference handed to the external billing provider and echoed back by its
// webhook.
// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID      uint               `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Tier        Tier               `gorm:"type:enum('free','brigade','fraternity','guild');not null" json:"tier"`
	Status      SubscriptionStatus `gorm:"size:20;default:'pending'" json:"status"`
	CheckoutRef string             `gorm:"uniqueIndex;size:36;not null" json:"checkoutRef"`
	ActivatedAt *time.Time         `json:"activatedAt"`
	CanceledAt  *time.Time         `json:"canceledAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
