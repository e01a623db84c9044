package controller

import (
	"chef_brigade_backend/internal/service"
	"chef_brigade_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	BillingService *service.BillingService
}

func NewBillingController(billingService *service.BillingService) *BillingController {
	return &BillingController{BillingService: billingService}
}

// StartCheckout godoc
// @Summary Begin a tier purchase
// @Description Returns a redirect URL to the external checkout provider. No
// @Description payment data passes through this API.
// @Tags billing
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CheckoutRequest true "tier to purchase"
// @Success 200 {object} util.Response{data=service.CheckoutResponse}
// @Router /api/billing/checkout [post]
func (c *BillingController) StartCheckout(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	checkout, err := c.BillingService.StartCheckout(user.UserID, req)
	if err != nil {
		switch err {
		case util.ErrUnknownTier, util.ErrSubscriptionExists:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, checkout)
}

// HandleWebhook godoc
// @Summary Checkout provider callback
// @Description Authenticated by the shared webhook secret, not a member token.
// @Tags billing
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "shared secret"
// @Param body body service.WebhookEvent true "event"
// @Success 200 {object} util.Response
// @Router /api/billing/webhook [post]
func (c *BillingController) HandleWebhook(ctx *gin.Context) {
	if !c.BillingService.VerifyWebhookSecret(ctx.GetHeader("X-Webhook-Secret")) {
		util.Unauthorized(ctx)
		return
	}

	var event service.WebhookEvent
	if err := ctx.ShouldBindJSON(&event); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.BillingService.HandleWebhook(event); err != nil {
		if err == util.ErrCheckoutNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CancelSubscription godoc
// @Summary Cancel the active subscription and drop to free
// @Tags billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/billing/cancel [post]
func (c *BillingController) CancelSubscription(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.BillingService.Cancel(user.UserID); err != nil {
		if err == util.ErrCheckoutNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GetHistory godoc
// @Summary Subscription history for the caller
// @Tags billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Subscription}
// @Router /api/billing/history [get]
func (c *BillingController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	history, err := c.BillingService.History(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}
