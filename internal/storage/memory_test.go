package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentia/backend/internal/models"
)

func newPost(id, author, category string, createdAt time.Time, hashtags ...string) *models.Post {
	return &models.Post{
		ID:        id,
		AuthorID:  author,
		Content:   "content of " + id,
		Category:  category,
		Hashtags:  hashtags,
		Visible:   true,
		CreatedAt: createdAt,
	}
}

func TestMemoryStoragePostLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	post := newPost("p1", "u1", "Music", time.Now())
	require.NoError(t, s.CreatePost(ctx, post))

	got, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Music", got.Category)

	require.NoError(t, s.DeletePost(ctx, "p1"))
	_, err = s.GetPost(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeletePost(ctx, "p1"), ErrNotFound)
}

func TestMemoryStoragePostsByCategory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	now := time.Now()
	require.NoError(t, s.CreatePost(ctx, newPost("p1", "u1", "Music", now.Add(-2*time.Hour))))
	require.NoError(t, s.CreatePost(ctx, newPost("p2", "u1", "Music", now.Add(-time.Hour))))
	require.NoError(t, s.CreatePost(ctx, newPost("p3", "u1", "Food", now)))

	hidden := newPost("p4", "u1", "Music", now)
	hidden.Visible = false
	require.NoError(t, s.CreatePost(ctx, hidden))

	posts, total, err := s.PostsByCategory(ctx, "Music", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, posts, 2)
	// Newest first
	assert.Equal(t, "p2", posts[0].ID)
	assert.Equal(t, "p1", posts[1].ID)

	// "All" matches every category, still excluding hidden posts
	posts, total, err = s.PostsByCategory(ctx, "All", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, posts, 3)

	// Pagination
	posts, total, err = s.PostsByCategory(ctx, "All", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, posts, 1)
	assert.Equal(t, "p1", posts[0].ID)
}

func TestMemoryStoragePostsByHashtag(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	now := time.Now()
	require.NoError(t, s.CreatePost(ctx, newPost("p1", "u1", "Food", now, "food", "dinner")))
	require.NoError(t, s.CreatePost(ctx, newPost("p2", "u1", "Food", now, "food")))
	require.NoError(t, s.CreatePost(ctx, newPost("p3", "u1", "Music", now, "concert")))

	posts, total, err := s.PostsByHashtag(ctx, "food", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, posts, 2)

	// Lookup is case-insensitive: stored hashtags are lowercase.
	posts, _, err = s.PostsByHashtag(ctx, "FOOD", 10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestMemoryStorageTrending(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	now := time.Now()
	quiet := newPost("quiet", "u1", "Music", now)
	busy := newPost("busy", "u1", "Music", now)
	busy.Likes = []string{"u2", "u3"}
	busy.CommentsCount = 2
	old := newPost("old", "u1", "Music", now.Add(-48*time.Hour))
	old.Likes = []string{"u2", "u3", "u4", "u5"}

	require.NoError(t, s.CreatePost(ctx, quiet))
	require.NoError(t, s.CreatePost(ctx, busy))
	require.NoError(t, s.CreatePost(ctx, old))

	posts, err := s.TrendingPosts(ctx, "All", now.Add(-24*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "busy", posts[0].ID)
	assert.Equal(t, "quiet", posts[1].ID)
}

func TestMemoryStorageTrendingHashtags(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	now := time.Now()
	require.NoError(t, s.CreatePost(ctx, newPost("p1", "u1", "Food", now, "food", "yum")))
	require.NoError(t, s.CreatePost(ctx, newPost("p2", "u2", "Food", now, "food")))
	require.NoError(t, s.CreatePost(ctx, newPost("p3", "u3", "Food", now.Add(-48*time.Hour), "stale")))

	tags, err := s.TrendingHashtags(ctx, now.Add(-24*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, models.HashtagCount{Hashtag: "food", Count: 2}, tags[0])
	assert.Equal(t, models.HashtagCount{Hashtag: "yum", Count: 1}, tags[1])
}

func TestMemoryStorageToggleLike(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.CreatePost(ctx, newPost("p1", "u1", "Music", time.Now())))

	liked, count, err := s.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count, err = s.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)

	_, _, err = s.ToggleLike(ctx, "missing", "u2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorageComments(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.CreatePost(ctx, newPost("p1", "u1", "Music", time.Now())))

	require.NoError(t, s.CreateComment(ctx, &models.Comment{
		ID: "c1", PostID: "p1", AuthorID: "u2", Content: "nice",
	}))
	require.NoError(t, s.CreateComment(ctx, &models.Comment{
		ID: "c2", PostID: "p1", AuthorID: "u3", Content: "agreed",
	}))

	post, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, post.CommentsCount)

	comments, err := s.CommentsByPost(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	err = s.CreateComment(ctx, &models.Comment{ID: "c3", PostID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorageUserStats(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, err := s.GetUser(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.AdjustUserStats(ctx, "u1", 1, 9))
	require.NoError(t, s.AdjustUserStats(ctx, "u1", 1, 4))

	user, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, user.TotalPosts)
	assert.Equal(t, 13, user.ClarityScore)
}

func TestMemoryStorageActivities(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	first := &models.Activity{
		ID: "a1", UserID: "u1", Type: models.ActivityPost,
		Action: "Created a post in Music", CreatedAt: time.Now().Add(-time.Hour),
	}
	second := &models.Activity{
		ID: "a2", UserID: "u1", Type: models.ActivityLike,
		Action: "Liked a post", CreatedAt: time.Now(),
	}
	require.NoError(t, s.RecordActivity(ctx, first))
	require.NoError(t, s.RecordActivity(ctx, second))

	activities, err := s.ActivitiesByUser(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "a2", activities[0].ID)

	activities, err = s.ActivitiesByUser(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}
