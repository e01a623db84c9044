package controller

import (
	"strconv"

	"chef_brigade_backend/internal/service"
	"chef_brigade_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BroadcastController struct {
	BroadcastService *service.BroadcastService
}

func NewBroadcastController(broadcastService *service.BroadcastService) *BroadcastController {
	return &BroadcastController{BroadcastService: broadcastService}
}

// ListBroadcasts godoc
// @Summary List broadcasts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/admin/broadcasts [get]
func (c *BroadcastController) ListBroadcasts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	broadcasts, total, err := c.BroadcastService.ListBroadcasts(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"broadcasts": broadcasts,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}

// CreateBroadcast godoc
// @Summary Create a draft broadcast
// @Description Audience is "all" or a minimum tier; members at or above it receive the broadcast.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.BroadcastRequest true "broadcast"
// @Success 201 {object} util.Response{data=model.Broadcast}
// @Router /api/admin/broadcasts [post]
func (c *BroadcastController) CreateBroadcast(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.BroadcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	broadcast, err := c.BroadcastService.CreateBroadcast(user.UserID, req)
	if err != nil {
		if err == util.ErrUnknownTier {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, broadcast)
}

// UpdateBroadcast godoc
// @Summary Edit a broadcast that has not been sent
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "broadcast id"
// @Param body body service.BroadcastRequest true "broadcast"
// @Success 200 {object} util.Response{data=model.Broadcast}
// @Router /api/admin/broadcasts/{id} [put]
func (c *BroadcastController) UpdateBroadcast(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid broadcast id")
		return
	}

	var req service.BroadcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	broadcast, err := c.BroadcastService.UpdateBroadcast(uint(id), req)
	if err != nil {
		switch err {
		case util.ErrBroadcastNotFound:
			util.NotFound(ctx)
		case util.ErrBroadcastNotDraft, util.ErrUnknownTier:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, broadcast)
}

// DeleteBroadcast godoc
// @Summary Delete an unsent broadcast
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "broadcast id"
// @Success 200 {object} util.Response
// @Router /api/admin/broadcasts/{id} [delete]
func (c *BroadcastController) DeleteBroadcast(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid broadcast id")
		return
	}

	if err := c.BroadcastService.DeleteBroadcast(uint(id)); err != nil {
		switch err {
		case util.ErrBroadcastNotFound:
			util.NotFound(ctx)
		case util.ErrBroadcastNotDraft:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// ScheduleBroadcast godoc
// @Summary Schedule a draft for future dispatch
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "broadcast id"
// @Param body body service.ScheduleRequest true "schedule"
// @Success 200 {object} util.Response{data=model.Broadcast}
// @Router /api/admin/broadcasts/{id}/schedule [post]
func (c *BroadcastController) ScheduleBroadcast(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid broadcast id")
		return
	}

	var req service.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	broadcast, err := c.BroadcastService.Schedule(uint(id), req)
	if err != nil {
		switch err {
		case util.ErrBroadcastNotFound:
			util.NotFound(ctx)
		case util.ErrBroadcastNotDraft, util.ErrScheduleInPast:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, broadcast)
}

// SendBroadcast godoc
// @Summary Send a broadcast immediately
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "broadcast id"
// @Success 200 {object} util.Response{data=model.Broadcast}
// @Router /api/admin/broadcasts/{id}/send [post]
func (c *BroadcastController) SendBroadcast(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid broadcast id")
		return
	}

	broadcast, err := c.BroadcastService.SendNow(uint(id))
	if err != nil {
		switch err {
		case util.ErrBroadcastNotFound:
			util.NotFound(ctx)
		case util.ErrBroadcastNotDraft:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, broadcast)
}

// GetNotifications godoc
// @Summary The caller's received broadcasts
// @Tags notifications
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/notifications [get]
func (c *BroadcastController) GetNotifications(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	notifications, total, err := c.BroadcastService.Notifications(user.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	unread, err := c.BroadcastService.UnreadCount(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"notifications": notifications,
		"total":         total,
		"unread":        unread,
		"page":          page,
		"limit":         limit,
	})
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "notification id"
// @Success 200 {object} util.Response
// @Router /api/notifications/{id}/read [post]
func (c *BroadcastController) MarkNotificationRead(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid notification id")
		return
	}

	if err := c.BroadcastService.MarkNotificationRead(user.UserID, uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
