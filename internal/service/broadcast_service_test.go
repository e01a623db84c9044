package service

import (
	"testing"

	"chef_brigade_backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestValidAudience(t *testing.T) {
	assert.True(t, validAudience("all"))
	assert.True(t, validAudience("free"))
	assert.True(t, validAudience("brigade"))
	assert.True(t, validAudience("guild"))
	assert.False(t, validAudience("platinum"))
	assert.False(t, validAudience(""))
}

func TestVerifyWebhookSecret(t *testing.T) {
	s := &BillingService{Cfg: &config.Config{}}
	s.Cfg.Billing.WebhookSecret = "top-secret"

	assert.True(t, s.VerifyWebhookSecret("top-secret"))
	assert.False(t, s.VerifyWebhookSecret("wrong"))
	assert.False(t, s.VerifyWebhookSecret(""))

	// An unset secret rejects everything rather than accepting everything.
	s.Cfg.Billing.WebhookSecret = ""
	assert.False(t, s.VerifyWebhookSecret(""))
}
