// Package service implements the post creation workflow and the feed
// queries around it. Creation is where the analysis pipeline runs: every
// derived field on a post is computed here, exactly once.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/intentia/backend/internal/analyzer"
	"github.com/intentia/backend/internal/media"
	"github.com/intentia/backend/internal/models"
	"github.com/intentia/backend/internal/storage"
)

// MaxContentLength bounds post content, matching the client-side limit.
const MaxContentLength = 2000

var (
	ErrEmptyContent   = errors.New("post content is empty")
	ErrContentTooLong = fmt.Errorf("post content exceeds %d characters", MaxContentLength)
	ErrForbidden      = errors.New("not the author of this post")
)

type PostService struct {
	analyzer *analyzer.Analyzer
	storage  storage.Storage
	media    media.Store
	logger   *zap.Logger
}

func NewPostService(a *analyzer.Analyzer, store storage.Storage, mediaStore media.Store, logger *zap.Logger) *PostService {
	return &PostService{
		analyzer: a,
		storage:  store,
		media:    mediaStore,
		logger:   logger,
	}
}

// CreatePostInput carries a new post. CategoryHint is accepted for API
// compatibility and deliberately ignored: the category is always derived
// from the content, never trusted from the client.
type CreatePostInput struct {
	AuthorID     string
	Content      string
	CategoryHint string
	Media        io.Reader
	MediaType    string
}

// Create runs the analysis pipeline over the content, persists the post
// and updates the author's stats. Analysis never fails; only validation,
// upload and persistence can.
func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	if input.Content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(input.Content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	result := s.analyzer.Analyze(input.Content)

	post := &models.Post{
		ID:          uuid.New().String(),
		AuthorID:    input.AuthorID,
		Content:     input.Content,
		Category:    result.Category,
		Summary:     result.Summary,
		Keywords:    result.Keywords,
		Hashtags:    result.Hashtags,
		Flagged:     result.Flagged,
		FlagReasons: result.FlagReasons,
		Visible:     true,
		CreatedAt:   time.Now(),
	}

	if input.Media != nil {
		url, id, err := s.media.Upload(ctx, input.Media, input.MediaType)
		if err != nil {
			return nil, fmt.Errorf("uploading media: %w", err)
		}
		post.MediaURL = url
		post.MediaID = id
		post.MediaType = media.TypeOf(input.MediaType)
	}

	if err := s.storage.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("saving post: %w", err)
	}

	// Clarity bonus rewards posts the pipeline got signal out of.
	bonus := (len(post.Keywords)+len(post.Hashtags))*2
	if post.Summary != post.Content {
		bonus += 5
	}
	if err := s.storage.AdjustUserStats(ctx, input.AuthorID, 1, bonus); err != nil {
		s.logger.Error("Failed to update user stats",
			zap.Error(err),
			zap.String("user_id", input.AuthorID))
	}

	s.recordActivity(ctx, input.AuthorID, models.ActivityPost,
		fmt.Sprintf("Created a post in %s", post.Category), post.ID)

	s.logger.Info("Post created",
		zap.String("post_id", post.ID),
		zap.String("category", post.Category),
		zap.Bool("flagged", post.Flagged))
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.storage.GetPost(ctx, id)
}

// Delete removes a post together with its media. Only the author may
// delete.
func (s *PostService) Delete(ctx context.Context, postID, requesterID string) error {
	post, err := s.storage.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return ErrForbidden
	}

	if post.MediaID != "" {
		if err := s.media.Delete(ctx, post.MediaID); err != nil {
			s.logger.Error("Failed to delete media",
				zap.Error(err),
				zap.String("media_id", post.MediaID))
		}
	}

	if err := s.storage.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	if err := s.storage.AdjustUserStats(ctx, post.AuthorID, -1, 0); err != nil {
		s.logger.Error("Failed to update user stats",
			zap.Error(err),
			zap.String("user_id", post.AuthorID))
	}
	return nil
}

func (s *PostService) FeedByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Post, int, error) {
	return s.storage.PostsByCategory(ctx, category, normalizeLimit(limit, 20), offset)
}

func (s *PostService) FeedByHashtag(ctx context.Context, hashtag string, limit, offset int) ([]*models.Post, int, error) {
	return s.storage.PostsByHashtag(ctx, hashtag, normalizeLimit(limit, 10), offset)
}

func (s *PostService) Trending(ctx context.Context, category, timeframe string) ([]*models.Post, error) {
	return s.storage.TrendingPosts(ctx, category, sinceForTimeframe(timeframe), 20)
}

func (s *PostService) TrendingHashtags(ctx context.Context, timeframe string, limit int) ([]models.HashtagCount, error) {
	return s.storage.TrendingHashtags(ctx, sinceForTimeframe(timeframe), normalizeLimit(limit, 10))
}

// ToggleLike likes the post for the user, or removes the like if already
// present. Returns the new state and like count.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (bool, int, error) {
	liked, count, err := s.storage.ToggleLike(ctx, postID, userID)
	if err != nil {
		return false, 0, err
	}

	action := "Unliked a post"
	if liked {
		action = "Liked a post"
	}
	s.recordActivity(ctx, userID, models.ActivityLike, action, postID)
	return liked, count, nil
}

func (s *PostService) AddComment(ctx context.Context, postID, authorID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.storage.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, authorID, models.ActivityComment, "Commented on a post", postID)
	return comment, nil
}

func (s *PostService) Comments(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.storage.CommentsByPost(ctx, postID)
}

func (s *PostService) Activities(ctx context.Context, userID string, limit int) ([]*models.Activity, error) {
	return s.storage.ActivitiesByUser(ctx, userID, normalizeLimit(limit, 20))
}

// recordActivity writes an audit entry. Activity logging is best-effort:
// a failure is logged, never surfaced to the caller.
func (s *PostService) recordActivity(ctx context.Context, userID string, typ models.ActivityType, action, targetPost string) {
	activity := &models.Activity{
		ID:         uuid.New().String(),
		UserID:     userID,
		Type:       typ,
		Action:     action,
		TargetPost: targetPost,
		CreatedAt:  time.Now(),
	}
	if err := s.storage.RecordActivity(ctx, activity); err != nil {
		s.logger.Error("Failed to record activity",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("type", string(typ)))
	}
}

func sinceForTimeframe(timeframe string) time.Time {
	now := time.Now()
	switch timeframe {
	case "day":
		return now.AddDate(0, 0, -1)
	case "month":
		return now.AddDate(0, -1, 0)
	default: // week
		return now.AddDate(0, 0, -7)
	}
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 || limit > 100 {
		return fallback
	}
	return limit
}
