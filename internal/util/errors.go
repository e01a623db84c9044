package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrTierRequired        = errors.New("membership tier does not grant access")
	ErrUnknownTier         = errors.New("unknown membership tier")
	ErrEntryNotFound       = errors.New("journal entry not found")
	ErrEmptyContent        = errors.New("entry content must not be empty")
	ErrInvalidMood         = errors.New("mood must be between 1 and 5")
	ErrCourseNotFound      = errors.New("course not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrBroadcastNotFound   = errors.New("broadcast not found")
	ErrBroadcastNotDraft   = errors.New("broadcast already scheduled or sent")
	ErrScheduleInPast      = errors.New("scheduled time must be in the future")
	ErrCheckoutNotFound    = errors.New("checkout reference not found")
	ErrSubscriptionExists  = errors.New("an active subscription already exists for this tier")
	ErrNoPromptsConfigured = errors.New("no journal prompts configured")
)
