package storage

import (
	"context"
	"errors"
	"time"

	"github.com/intentia/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Storage is the document-store boundary of the post workflow. The
// in-memory implementation backs tests and local development; PostgreSQL
// backs production. Selection happens at boot via config.
type Storage interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id string) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error

	// PostsByCategory returns visible posts, newest first. The category
	// "All" matches every category. Returns the page and the total count.
	PostsByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Post, int, error)

	// PostsByHashtag returns visible posts carrying the hashtag, newest
	// first.
	PostsByHashtag(ctx context.Context, hashtag string, limit, offset int) ([]*models.Post, int, error)

	// TrendingPosts returns visible posts created since the given time,
	// ranked by engagement (likes + 2x comments). "All" matches every
	// category.
	TrendingPosts(ctx context.Context, category string, since time.Time, limit int) ([]*models.Post, error)

	// TrendingHashtags aggregates hashtag usage counts since the given
	// time, most used first.
	TrendingHashtags(ctx context.Context, since time.Time, limit int) ([]models.HashtagCount, error)

	// ToggleLike adds the user's like if absent, removes it if present.
	// Returns the new liked state and like count.
	ToggleLike(ctx context.Context, postID, userID string) (bool, int, error)

	CreateComment(ctx context.Context, comment *models.Comment) error
	CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error)

	GetUser(ctx context.Context, id string) (*models.User, error)

	// AdjustUserStats bumps the user's post count and clarity score by the
	// given deltas.
	AdjustUserStats(ctx context.Context, userID string, postsDelta, clarityDelta int) error

	RecordActivity(ctx context.Context, activity *models.Activity) error
	ActivitiesByUser(ctx context.Context, userID string, limit int) ([]*models.Activity, error)

	Close() error
}
