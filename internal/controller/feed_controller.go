package controller

import (
	"strconv"

	"chef_brigade_backend/internal/middleware"
	"chef_brigade_backend/internal/service"
	"chef_brigade_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedController struct {
	FeedService    *service.FeedService
	StorageService *service.StorageService
}

func NewFeedController(feedService *service.FeedService, storageService *service.StorageService) *FeedController {
	return &FeedController{
		FeedService:    feedService,
		StorageService: storageService,
	}
}

// GetPosts godoc
// @Summary Feed posts visible to the caller's tier
// @Tags feed
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/feed/posts [get]
func (c *FeedController) GetPosts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	var viewerID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		viewerID = claims.UserID
	}

	posts, total, err := c.FeedService.GetPosts(ctx.Request.Context(), viewerID, middleware.ClaimsTier(ctx), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetPost godoc
// @Summary Post detail with comments
// @Tags feed
// @Produce json
// @Param id path string true "post id"
// @Success 200 {object} util.Response
// @Router /api/feed/posts/{id} [get]
func (c *FeedController) GetPost(ctx *gin.Context) {
	var viewerID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		viewerID = claims.UserID
	}

	post, comments, err := c.FeedService.GetPost(ctx.Request.Context(), viewerID, middleware.ClaimsTier(ctx), ctx.Param("id"))
	if err != nil {
		switch err {
		case util.ErrPostNotFound:
			util.NotFound(ctx)
		case util.ErrTierRequired:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// CreatePost godoc
// @Summary Publish a feed post
// @Tags feed
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.PostRequest true "post"
// @Success 201 {object} util.Response{data=model.Post}
// @Router /api/feed/posts [post]
func (c *FeedController) CreatePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.FeedService.CreatePost(user.UserID, middleware.ClaimsTier(ctx), req)
	if err != nil {
		switch err {
		case util.ErrUnknownTier:
			util.BadRequest(ctx, err.Error())
		case util.ErrTierRequired:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, post)
}

// DeletePost godoc
// @Summary Delete a post (author or admin)
// @Tags feed
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "post id"
// @Success 200 {object} util.Response
// @Router /api/feed/posts/{id} [delete]
func (c *FeedController) DeletePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.FeedService.DeletePost(user.UserID, user.Role, ctx.Param("id")); err != nil {
		switch err {
		case util.ErrPostNotFound:
			util.NotFound(ctx)
		case util.ErrPermissionDenied:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags feed
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "post id"
// @Param body body service.CommentRequest true "comment"
// @Success 201 {object} util.Response{data=model.Comment}
// @Router /api/feed/posts/{id}/comments [post]
func (c *FeedController) CreateComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.FeedService.CreateComment(user.UserID, middleware.ClaimsTier(ctx), ctx.Param("id"), req)
	if err != nil {
		switch err {
		case util.ErrPostNotFound:
			util.NotFound(ctx)
		case util.ErrTierRequired:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, comment)
}

// DeleteComment godoc
// @Summary Delete a comment (author or admin)
// @Tags feed
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "comment id"
// @Success 200 {object} util.Response
// @Router /api/feed/comments/{id} [delete]
func (c *FeedController) DeleteComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.FeedService.DeleteComment(user.UserID, user.Role, ctx.Param("id")); err != nil {
		switch err {
		case util.ErrPostNotFound:
			util.NotFound(ctx)
		case util.ErrPermissionDenied:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags feed
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "post id"
// @Success 200 {object} util.Response
// @Router /api/feed/posts/{id}/like [post]
func (c *FeedController) ToggleLike(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	liked, count, err := c.FeedService.ToggleLike(user.UserID, middleware.ClaimsTier(ctx), ctx.Param("id"))
	if err != nil {
		switch err {
		case util.ErrPostNotFound:
			util.NotFound(ctx)
		case util.ErrTierRequired:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"liked": liked,
		"likes": count,
	})
}

// UploadImage godoc
// @Summary Upload an image for a feed post
// @Tags feed
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image"
// @Success 200 {object} util.Response
// @Router /api/feed/upload [post]
func (c *FeedController) UploadImage(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	defer file.Close()

	filename := "feed/" + service.UploadFilename(user.UserID, header.Filename)
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
