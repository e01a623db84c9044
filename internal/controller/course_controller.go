package controller

import (
	"strconv"

	"chef_brigade_backend/internal/middleware"
	"chef_brigade_backend/internal/service"
	"chef_brigade_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// ListCourses godoc
// @Summary List published courses
// @Description Locked courses are included so members can see what an upgrade unlocks
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.CourseListItem}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	courses, err := c.CourseService.ListCourses(userID, middleware.ClaimsTier(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Course detail with lessons and progress
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "tier does not grant access"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, progress, err := c.CourseService.GetCourse(uint(courseID), user.UserID, middleware.ClaimsTier(ctx))
	if err != nil {
		switch err {
		case util.ErrCourseNotFound:
			util.NotFound(ctx)
		case util.ErrTierRequired:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"course":   course,
		"progress": progress,
	})
}

// RecordProgress godoc
// @Summary Record video watch progress for a lesson
// @Description Watched seconds only move forward; completion at 90% or an explicit flag
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path int true "lesson id"
// @Param body body service.ProgressRequest true "progress"
// @Success 200 {object} util.Response{data=model.LessonProgress}
// @Router /api/lessons/{lessonId}/progress [post]
func (c *CourseController) RecordProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	lessonID, err := strconv.Atoi(ctx.Param("lessonId"))
	if err != nil {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req service.ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.CourseService.RecordProgress(user.UserID, middleware.ClaimsTier(ctx), uint(lessonID), req)
	if err != nil {
		switch err {
		case util.ErrLessonNotFound, util.ErrCourseNotFound:
			util.NotFound(ctx)
		case util.ErrTierRequired:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseRequest true "course"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(req)
	if err != nil {
		if err == util.ErrUnknownTier {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// AddLesson godoc
// @Summary Add a lesson to a course
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param body body service.LessonRequest true "lesson"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Router /api/admin/courses/{id}/lessons [post]
func (c *CourseController) AddLesson(ctx *gin.Context) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.CourseService.AddLesson(uint(courseID), req)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}
