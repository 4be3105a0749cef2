package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/intentia/backend/internal/models"
)

// MemoryStorage keeps everything in process memory behind a RWMutex. Used
// by tests and local development.
type MemoryStorage struct {
	mu         sync.RWMutex
	posts      map[string]*models.Post
	comments   map[string][]*models.Comment
	users      map[string]*models.User
	activities map[string][]*models.Activity
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		posts:      make(map[string]*models.Post),
		comments:   make(map[string][]*models.Comment),
		users:      make(map[string]*models.User),
		activities: make(map[string][]*models.Activity),
	}
}

func (s *MemoryStorage) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	clone := *post
	s.posts[post.ID] = &clone
	return nil
}

func (s *MemoryStorage) GetPost(ctx context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (s *MemoryStorage) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[id]; !exists {
		return ErrNotFound
	}
	delete(s.posts, id)
	delete(s.comments, id)
	return nil
}

func (s *MemoryStorage) PostsByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Post, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := s.visiblePosts(func(p *models.Post) bool {
		return category == "All" || p.Category == category
	})
	return pagePosts(matching, limit, offset), len(matching), nil
}

func (s *MemoryStorage) PostsByHashtag(ctx context.Context, hashtag string, limit, offset int) ([]*models.Post, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hashtag = strings.ToLower(hashtag)
	matching := s.visiblePosts(func(p *models.Post) bool {
		for _, h := range p.Hashtags {
			if h == hashtag {
				return true
			}
		}
		return false
	})
	return pagePosts(matching, limit, offset), len(matching), nil
}

func (s *MemoryStorage) TrendingPosts(ctx context.Context, category string, since time.Time, limit int) ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := s.visiblePosts(func(p *models.Post) bool {
		if p.CreatedAt.Before(since) {
			return false
		}
		return category == "All" || p.Category == category
	})
	sort.SliceStable(matching, func(i, j int) bool {
		return engagement(matching[i]) > engagement(matching[j])
	})
	if limit > 0 && len(matching) > limit {
		matching = matching[:limit]
	}
	return matching, nil
}

func (s *MemoryStorage) TrendingHashtags(ctx context.Context, since time.Time, limit int) ([]models.HashtagCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range s.posts {
		if p.CreatedAt.Before(since) {
			continue
		}
		for _, h := range p.Hashtags {
			counts[h]++
		}
	}

	result := make([]models.HashtagCount, 0, len(counts))
	for h, c := range counts {
		result = append(result, models.HashtagCount{Hashtag: h, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Hashtag < result[j].Hashtag
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *MemoryStorage) ToggleLike(ctx context.Context, postID, userID string) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[postID]
	if !exists {
		return false, 0, ErrNotFound
	}

	for i, id := range post.Likes {
		if id == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return false, len(post.Likes), nil
		}
	}
	post.Likes = append(post.Likes, userID)
	return true, len(post.Likes), nil
}

func (s *MemoryStorage) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[comment.PostID]
	if !exists {
		return ErrNotFound
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	clone := *comment
	s.comments[comment.PostID] = append(s.comments[comment.PostID], &clone)
	post.CommentsCount++
	return nil
}

func (s *MemoryStorage) CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]*models.Comment, 0, len(s.comments[postID]))
	for _, c := range s.comments[postID] {
		clone := *c
		comments = append(comments, &clone)
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (s *MemoryStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, exists := s.users[id]; exists {
		clone := *user
		return &clone, nil
	}
	return nil, ErrNotFound
}

// PutUser seeds a user record. The account itself is owned by the auth
// collaborator; storage only tracks the profile fields the post workflow
// updates.
func (s *MemoryStorage) PutUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *user
	s.users[user.ID] = &clone
}

func (s *MemoryStorage) AdjustUserStats(ctx context.Context, userID string, postsDelta, clarityDelta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		user = &models.User{ID: userID, CreatedAt: time.Now()}
		s.users[userID] = user
	}
	user.TotalPosts += postsDelta
	user.ClarityScore += clarityDelta
	return nil
}

func (s *MemoryStorage) RecordActivity(ctx context.Context, activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	clone := *activity
	s.activities[activity.UserID] = append(s.activities[activity.UserID], &clone)
	return nil
}

func (s *MemoryStorage) ActivitiesByUser(ctx context.Context, userID string, limit int) ([]*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]*models.Activity, 0, len(s.activities[userID]))
	for _, a := range s.activities[userID] {
		clone := *a
		activities = append(activities, &clone)
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}

// visiblePosts returns copies of visible posts matching the filter,
// newest first. Callers must hold at least a read lock.
func (s *MemoryStorage) visiblePosts(match func(*models.Post) bool) []*models.Post {
	var posts []*models.Post
	for _, p := range s.posts {
		if !p.Visible || !match(p) {
			continue
		}
		clone := *p
		posts = append(posts, &clone)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func pagePosts(posts []*models.Post, limit, offset int) []*models.Post {
	if offset >= len(posts) {
		return nil
	}
	posts = posts[offset:]
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

func engagement(p *models.Post) int {
	return len(p.Likes) + 2*p.CommentsCount
}
