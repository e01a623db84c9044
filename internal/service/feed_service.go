package service

import (
	"context"
	"fmt"
	"time"

	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/repository"
	"chef_brigade_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// FeedService serves the member feed. Visibility is tier-gated per post;
// view counts live in Redis so feed reads stay cheap.
type FeedService struct {
	PostRepo    *repository.PostRepository
	CommentRepo *repository.CommentRepository
	UserRepo    *repository.UserRepository
	Redis       *redis.Client
}

func NewFeedService(
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *FeedService {
	return &FeedService{
		PostRepo:    postRepo,
		CommentRepo: commentRepo,
		UserRepo:    userRepo,
		Redis:       rdb,
	}
}

type PostRequest struct {
	Content      string     `json:"content" binding:"required"`
	ImageURL     string     `json:"imageUrl"`
	RequiredTier model.Tier `json:"requiredTier"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type PostResponse struct {
	ID           string     `json:"id"`
	Author       string     `json:"author"`
	AuthorID     uint       `json:"authorId"`
	Avatar       string     `json:"avatar"`
	Content      string     `json:"content"`
	ImageURL     string     `json:"imageUrl"`
	RequiredTier model.Tier `json:"requiredTier"`
	IsPinned     bool       `json:"isPinned"`
	CreatedAt    time.Time  `json:"createdAt"`
	Likes        int64      `json:"likes"`
	Views        int64      `json:"views"`
	CommentCount int64      `json:"commentCount"`
	IsLiked      bool       `json:"isLiked"`
}

func postViewKey(postID string) string {
	return fmt.Sprintf("post_views_%s", postID)
}

// visibleTiers is the set of post gates the viewer passes: every tier at or
// below the viewer's own.
func visibleTiers(viewerTier model.Tier) []model.Tier {
	if !viewerTier.Valid() {
		viewerTier = model.TierFree
	}
	var tiers []model.Tier
	for _, t := range model.AllTiers() {
		if model.HasAccess(viewerTier, t) {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

// GetPosts pages the feed, filtered to posts the viewer's tier may see.
// viewerID 0 means guest.
func (s *FeedService) GetPosts(ctx context.Context, viewerID uint, viewerTier model.Tier, page, limit int) ([]PostResponse, int64, error) {
	posts, total, err := s.PostRepo.ListVisible(visibleTiers(viewerTier), page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		resp := PostResponse{
			ID:           post.ID,
			Author:       post.Author.Name,
			AuthorID:     post.AuthorID,
			Avatar:       post.Author.Avatar,
			Content:      post.Content,
			ImageURL:     post.ImageURL,
			RequiredTier: post.RequiredTier,
			IsPinned:     post.IsPinned,
			CreatedAt:    post.CreatedAt,
		}
		resp.Likes, _ = s.PostRepo.CountLikes(post.ID)
		resp.CommentCount, _ = s.CommentRepo.CountByPost(post.ID)
		resp.Views, _ = s.Redis.Get(ctx, postViewKey(post.ID)).Int64()
		if viewerID != 0 {
			resp.IsLiked, _ = s.PostRepo.HasLiked(viewerID, post.ID)
		}
		responses = append(responses, resp)
	}
	return responses, total, nil
}

// GetPost returns one post and its comments, bumping the view counter.
func (s *FeedService) GetPost(ctx context.Context, viewerID uint, viewerTier model.Tier, postID string) (*PostResponse, []model.Comment, error) {
	post, err := s.PostRepo.FindByID(postID)
	if err != nil {
		return nil, nil, util.ErrPostNotFound
	}
	if !model.HasAccess(viewerTier, post.RequiredTier) {
		return nil, nil, util.ErrTierRequired
	}

	views, _ := s.Redis.Incr(ctx, postViewKey(postID)).Result()

	comments, err := s.CommentRepo.ListByPost(postID)
	if err != nil {
		return nil, nil, err
	}

	resp := &PostResponse{
		ID:           post.ID,
		Author:       post.Author.Name,
		AuthorID:     post.AuthorID,
		Avatar:       post.Author.Avatar,
		Content:      post.Content,
		ImageURL:     post.ImageURL,
		RequiredTier: post.RequiredTier,
		IsPinned:     post.IsPinned,
		CreatedAt:    post.CreatedAt,
		Views:        views,
		CommentCount: int64(len(comments)),
	}
	resp.Likes, _ = s.PostRepo.CountLikes(postID)
	if viewerID != 0 {
		resp.IsLiked, _ = s.PostRepo.HasLiked(viewerID, postID)
	}
	return resp, comments, nil
}

// CreatePost publishes to the feed. A member may not gate a post above their
// own tier.
func (s *FeedService) CreatePost(authorID uint, authorTier model.Tier, req PostRequest) (*model.Post, error) {
	tier := req.RequiredTier
	if tier == "" {
		tier = model.TierFree
	}
	if !tier.Valid() {
		return nil, util.ErrUnknownTier
	}
	if !model.HasAccess(authorTier, tier) {
		return nil, util.ErrTierRequired
	}

	post := &model.Post{
		AuthorID:     authorID,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		RequiredTier: tier,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost is restricted to the author or an admin.
func (s *FeedService) DeletePost(callerID uint, callerRole model.UserRole, postID string) error {
	post, err := s.PostRepo.FindByID(postID)
	if err != nil {
		return util.ErrPostNotFound
	}
	if post.AuthorID != callerID && callerRole != model.Admin {
		return util.ErrPermissionDenied
	}
	return s.PostRepo.DeleteWithDependents(postID)
}

func (s *FeedService) CreateComment(authorID uint, authorTier model.Tier, postID string, req CommentRequest) (*model.Comment, error) {
	post, err := s.PostRepo.FindByID(postID)
	if err != nil {
		return nil, util.ErrPostNotFound
	}
	if !model.HasAccess(authorTier, post.RequiredTier) {
		return nil, util.ErrTierRequired
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *FeedService) DeleteComment(callerID uint, callerRole model.UserRole, commentID string) error {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		return util.ErrPostNotFound
	}
	if comment.AuthorID != callerID && callerRole != model.Admin {
		return util.ErrPermissionDenied
	}
	return s.CommentRepo.Delete(commentID)
}

// ToggleLike likes or unlikes and returns the new state and count.
func (s *FeedService) ToggleLike(userID uint, userTier model.Tier, postID string) (bool, int64, error) {
	post, err := s.PostRepo.FindByID(postID)
	if err != nil {
		return false, 0, util.ErrPostNotFound
	}
	if !model.HasAccess(userTier, post.RequiredTier) {
		return false, 0, util.ErrTierRequired
	}

	liked, err := s.PostRepo.HasLiked(userID, postID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		err = s.PostRepo.RemoveLike(userID, postID)
	} else {
		err = s.PostRepo.AddLike(userID, postID)
	}
	if err != nil {
		return false, 0, err
	}

	count, err := s.PostRepo.CountLikes(postID)
	return !liked, count, err
}
