package controller

import (
	"chef_brigade_backend/internal/service"
	"chef_brigade_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	JournalService *service.JournalService
}

func NewJournalController(journalService *service.JournalService) *JournalController {
	return &JournalController{JournalService: journalService}
}

// ListEntries godoc
// @Summary List the caller's journal entries
// @Description Newest first, with streak and mood stats. degraded=true means
// @Description the entries were served from the offline cache.
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.JournalView}
// @Router /api/journal/entries [get]
func (c *JournalController) ListEntries(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.JournalService.ListEntries(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// CreateEntry godoc
// @Summary Create a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateEntryRequest true "entry"
// @Success 201 {object} util.Response{data=service.JournalView}
// @Router /api/journal/entries [post]
func (c *JournalController) CreateEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.JournalService.CreateEntry(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		if err == util.ErrEmptyContent || err == util.ErrInvalidMood {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// UpdateEntry godoc
// @Summary Edit a journal entry
// @Description Content, mood and privacy are editable; the entry date is not.
// @Tags journal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "entry id"
// @Param body body service.UpdateEntryRequest true "patch"
// @Success 200 {object} util.Response{data=service.JournalView}
// @Router /api/journal/entries/{id} [put]
func (c *JournalController) UpdateEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.JournalService.UpdateEntry(ctx.Request.Context(), user.UserID, ctx.Param("id"), req)
	if err != nil {
		switch err {
		case util.ErrEntryNotFound:
			util.NotFound(ctx)
		case util.ErrEmptyContent, util.ErrInvalidMood:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, view)
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Description Idempotent: deleting an unknown id succeeds with no change.
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "entry id"
// @Success 200 {object} util.Response{data=service.JournalView}
// @Router /api/journal/entries/{id} [delete]
func (c *JournalController) DeleteEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.JournalService.DeleteEntry(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// GetStats godoc
// @Summary Streak and mood statistics
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.JournalView}
// @Router /api/journal/stats [get]
func (c *JournalController) GetStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.JournalService.Stats(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// GetPrompt godoc
// @Summary Today's journal prompt
// @Description Deterministic per calendar date
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.PromptOfDay}
// @Router /api/journal/prompt [get]
func (c *JournalController) GetPrompt(ctx *gin.Context) {
	prompt, err := c.JournalService.TodayPrompt()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prompt)
}
