package controller

import (
	"strconv"

	"chef_brigade_backend/internal/service"
	"chef_brigade_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetOverview godoc
// @Summary Dashboard headline numbers
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AnalyticsOverview}
// @Router /api/admin/analytics/overview [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	overview, err := c.AnalyticsService.Overview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// GetEngagement godoc
// @Summary Signups and journal entries per day
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "window in days" default(30)
// @Success 200 {object} util.Response{data=service.EngagementDetail}
// @Router /api/admin/analytics/engagement [get]
func (c *AnalyticsController) GetEngagement(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "30"))

	detail, err := c.AnalyticsService.Engagement(days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// GetCourseCompletions godoc
// @Summary Members who finished every lesson, per course
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/analytics/courses [get]
func (c *AnalyticsController) GetCourseCompletions(ctx *gin.Context) {
	completions, err := c.AnalyticsService.CourseCompletions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, completions)
}
