package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/intentia/backend/internal/auth"
	"github.com/intentia/backend/internal/service"
	"github.com/intentia/backend/internal/storage"
)

type loginRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "user_id and secret are required")
		return
	}

	token, err := s.sessions.Login(c.Request.Context(), req.UserID, req.Secret)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}
	if err != nil {
		s.fail(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"token": token},
	})
}

func (s *Server) logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := header[len("Bearer "):]
	if err := s.sessions.Logout(c.Request.Context(), token); err != nil {
		s.fail(c, "logout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type createPostRequest struct {
	Content string `json:"content" binding:"required"`
	// Accepted but ignored: the category is always derived from content.
	Category string `json:"category"`
}

func (s *Server) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "content is required")
		return
	}

	post, err := s.posts.Create(c.Request.Context(), service.CreatePostInput{
		AuthorID:     currentUserID(c),
		Content:      req.Content,
		CategoryHint: req.Category,
	})
	if errors.Is(err, service.ErrEmptyContent) || errors.Is(err, service.ErrContentTooLong) {
		badRequest(c, err.Error())
		return
	}
	if err != nil {
		s.fail(c, "create post", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": post})
}

func (s *Server) postsByCategory(c *gin.Context) {
	limit := intQuery(c, "limit", 20)
	page := intQuery(c, "page", 1)

	posts, total, err := s.posts.FeedByCategory(c.Request.Context(),
		c.Param("category"), limit, (page-1)*limit)
	if err != nil {
		s.fail(c, "fetch posts by category", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    posts,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + limit - 1) / limit,
		},
	})
}

func (s *Server) postsByHashtag(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	page := intQuery(c, "page", 1)

	posts, total, err := s.posts.FeedByHashtag(c.Request.Context(),
		c.Param("hashtag"), limit, (page-1)*limit)
	if err != nil {
		s.fail(c, "fetch posts by hashtag", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    posts,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + limit - 1) / limit,
		},
	})
}

func (s *Server) trendingPosts(c *gin.Context) {
	posts, err := s.posts.Trending(c.Request.Context(),
		c.Param("category"), c.DefaultQuery("timeframe", "week"))
	if err != nil {
		s.fail(c, "fetch trending posts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
}

func (s *Server) trendingHashtags(c *gin.Context) {
	tags, err := s.posts.TrendingHashtags(c.Request.Context(),
		c.DefaultQuery("timeframe", "week"), intQuery(c, "limit", 10))
	if err != nil {
		s.fail(c, "fetch trending hashtags", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tags})
}

func (s *Server) toggleLike(c *gin.Context) {
	liked, count, err := s.posts.ToggleLike(c.Request.Context(),
		c.Param("id"), currentUserID(c))
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Post not found")
		return
	}
	if err != nil {
		s.fail(c, "toggle like", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"liked": liked, "likes_count": count},
	})
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (s *Server) addComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "content is required")
		return
	}

	comment, err := s.posts.AddComment(c.Request.Context(),
		c.Param("id"), currentUserID(c), req.Content)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Post not found")
		return
	}
	if err != nil {
		s.fail(c, "add comment", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": comment})
}

func (s *Server) comments(c *gin.Context) {
	comments, err := s.posts.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, "fetch comments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": comments})
}

func (s *Server) deletePost(c *gin.Context) {
	err := s.posts.Delete(c.Request.Context(), c.Param("id"), currentUserID(c))
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Post not found")
		return
	}
	if errors.Is(err, service.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Not authorized to delete this post",
		})
		return
	}
	if err != nil {
		s.fail(c, "delete post", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted successfully"})
}

func (s *Server) activity(c *gin.Context) {
	activities, err := s.posts.Activities(c.Request.Context(),
		currentUserID(c), intQuery(c, "limit", 20))
	if err != nil {
		s.fail(c, "fetch activity", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": activities})
}

func (s *Server) fail(c *gin.Context, op string, err error) {
	s.logger.Error("Request failed",
		zap.String("op", op),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal error",
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": message})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
