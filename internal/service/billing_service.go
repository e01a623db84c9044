package service

import (
	"crypto/subtle"
	"fmt"
	"net/url"
	"time"

	"chef_brigade_backend/internal/config"
	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/repository"
	"chef_brigade_backend/internal/util"
	"chef_brigade_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillingService integrates the opaque redirect-based checkout provider. We
// never touch card data: checkout creates a pending subscription and a
// redirect URL; the provider's webhook echoes our reference back with an
// outcome.
type BillingService struct {
	SubscriptionRepo *repository.SubscriptionRepository
	UserRepo         *repository.UserRepository
	Cfg              *config.Config
	Now              func() time.Time
}

func NewBillingService(subscriptionRepo *repository.SubscriptionRepository, userRepo *repository.UserRepository, cfg *config.Config) *BillingService {
	return &BillingService{
		SubscriptionRepo: subscriptionRepo,
		UserRepo:         userRepo,
		Cfg:              cfg,
		Now:              time.Now,
	}
}

type CheckoutRequest struct {
	Tier model.Tier `json:"tier" binding:"required"`
}

type CheckoutResponse struct {
	CheckoutRef string `json:"checkoutRef"`
	RedirectURL string `json:"redirectUrl"`
}

type WebhookEvent struct {
	Reference string `json:"reference" binding:"required"`
	Status    string `json:"status" binding:"required"` // completed | canceled
}

// StartCheckout creates a pending subscription and the provider redirect.
// Free is not purchasable and downgrades use Cancel.
func (s *BillingService) StartCheckout(userID uint, req CheckoutRequest) (*CheckoutResponse, error) {
	if !req.Tier.Valid() || req.Tier == model.TierFree {
		return nil, util.ErrUnknownTier
	}

	if active, err := s.SubscriptionRepo.FindActiveByUser(userID); err == nil && active.Tier == req.Tier {
		return nil, util.ErrSubscriptionExists
	}

	sub := &model.Subscription{
		UserID:      userID,
		Tier:        req.Tier,
		Status:      model.SubscriptionPending,
		CheckoutRef: uuid.New().String(),
	}
	if err := s.SubscriptionRepo.Create(sub); err != nil {
		return nil, err
	}

	redirect := fmt.Sprintf("%s/checkout?ref=%s&tier=%s&success_url=%s&cancel_url=%s",
		s.Cfg.Billing.ProviderURL,
		sub.CheckoutRef,
		req.Tier,
		url.QueryEscape(s.Cfg.Billing.SuccessURL),
		url.QueryEscape(s.Cfg.Billing.CancelURL),
	)

	return &CheckoutResponse{
		CheckoutRef: sub.CheckoutRef,
		RedirectURL: redirect,
	}, nil
}

// VerifyWebhookSecret checks the provider's shared secret header in constant
// time.
func (s *BillingService) VerifyWebhookSecret(got string) bool {
	want := s.Cfg.Billing.WebhookSecret
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// HandleWebhook applies a provider outcome. Completed checkouts activate the
// subscription and move the member onto the purchased tier; a replayed event
// for an already-settled reference is a no-op.
func (s *BillingService) HandleWebhook(event WebhookEvent) error {
	sub, err := s.SubscriptionRepo.FindByCheckoutRef(event.Reference)
	if err != nil {
		return util.ErrCheckoutNotFound
	}

	if sub.Status != model.SubscriptionPending {
		logger.Log.Info("billing webhook replay ignored",
			zap.String("reference", event.Reference), zap.String("status", string(sub.Status)))
		return nil
	}

	now := s.Now()
	switch event.Status {
	case "completed":
		sub.Status = model.SubscriptionActive
		sub.ActivatedAt = &now
		if err := s.SubscriptionRepo.Update(sub); err != nil {
			return err
		}
		if err := s.UserRepo.UpdateTier(sub.UserID, sub.Tier); err != nil {
			return err
		}
		logger.Log.Info("subscription activated",
			zap.Uint("userID", sub.UserID), zap.String("tier", string(sub.Tier)))
	case "canceled":
		sub.Status = model.SubscriptionCanceled
		sub.CanceledAt = &now
		if err := s.SubscriptionRepo.Update(sub); err != nil {
			return err
		}
	default:
		logger.Log.Warn("billing webhook with unknown status",
			zap.String("reference", event.Reference), zap.String("status", event.Status))
	}
	return nil
}

// Cancel voids the member's active subscription and drops them to free.
func (s *BillingService) Cancel(userID uint) error {
	sub, err := s.SubscriptionRepo.FindActiveByUser(userID)
	if err != nil {
		return util.ErrCheckoutNotFound
	}

	now := s.Now()
	sub.Status = model.SubscriptionCanceled
	sub.CanceledAt = &now
	if err := s.SubscriptionRepo.Update(sub); err != nil {
		return err
	}
	return s.UserRepo.UpdateTier(userID, model.TierFree)
}

func (s *BillingService) History(userID uint) ([]model.Subscription, error) {
	return s.SubscriptionRepo.ListByUser(userID)
}
