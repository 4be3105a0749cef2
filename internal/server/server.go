// Package server wires the HTTP surface. Handlers are thin: validation
// and JSON shaping here, everything else in the service and auth layers.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/intentia/backend/internal/auth"
	"github.com/intentia/backend/internal/service"
)

type Server struct {
	posts    *service.PostService
	sessions *auth.SessionManager
	logger   *zap.Logger
	router   *gin.Engine
}

func New(posts *service.PostService, sessions *auth.SessionManager, logger *zap.Logger) *Server {
	s := &Server{
		posts:    posts,
		sessions: sessions,
		logger:   logger,
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")
	api.POST("/auth/login", s.login)

	authed := api.Group("", s.requireSession)
	authed.POST("/auth/logout", s.logout)
	authed.POST("/posts", s.createPost)
	authed.GET("/posts/category/:category", s.postsByCategory)
	authed.GET("/posts/hashtag/:hashtag", s.postsByHashtag)
	authed.GET("/posts/trending/:category", s.trendingPosts)
	authed.GET("/posts/trending-hashtags", s.trendingHashtags)
	authed.POST("/posts/:id/like", s.toggleLike)
	authed.POST("/posts/:id/comments", s.addComment)
	authed.GET("/posts/:id/comments", s.comments)
	authed.DELETE("/posts/:id", s.deletePost)
	authed.GET("/activity", s.activity)

	s.router = r
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(port int) error {
	return s.router.Run(fmt.Sprintf(":%d", port))
}
