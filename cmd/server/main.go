package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/intentia/backend/internal/analyzer"
	"github.com/intentia/backend/internal/auth"
	"github.com/intentia/backend/internal/media"
	"github.com/intentia/backend/internal/server"
	"github.com/intentia/backend/internal/service"
	"github.com/intentia/backend/internal/storage"
	"github.com/intentia/backend/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize the analysis pipeline. A bad dictionary is fatal here,
	// never at request time.
	pipeline, err := analyzer.New(analyzer.Config{
		Fallback:    cfg.Analyzer.FallbackCategory,
		MaxKeywords: cfg.Analyzer.MaxKeywords,
	})
	if err != nil {
		logger.Fatal("Failed to initialize analyzer", zap.Error(err))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		store, err = storage.NewPostgresStorage(storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize session store
	var sessionStore auth.SessionStore
	if cfg.Redis.UseInMemory {
		logger.Info("Using in-memory sessions")
		sessionStore = auth.NewMemorySessionStore()
	} else {
		logger.Info("Using Redis sessions", zap.String("addr", cfg.Redis.Addr))
		sessionStore, err = auth.NewRedisSessionStore(context.Background(),
			cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("Failed to initialize session store", zap.Error(err))
		}
	}
	defer sessionStore.Close()

	if cfg.Auth.VerifyURL == "" {
		logger.Fatal("auth.verify_url is required")
	}
	sessions := auth.NewSessionManager(
		auth.NewHTTPVerifier(cfg.Auth.VerifyURL),
		sessionStore,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		logger,
	)

	posts := service.NewPostService(pipeline, store, media.NewMemoryStore(), logger)

	srv := server.New(posts, sessions, logger)
	logger.Info("Starting server", zap.Int("port", cfg.Server.Port))
	if err := srv.Run(cfg.Server.Port); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
