package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrypal/backend/config"
	"github.com/pantrypal/backend/internal/api"
	"github.com/pantrypal/backend/internal/database"
	"github.com/pantrypal/backend/internal/middleware"
	"github.com/pantrypal/backend/internal/router"
	"github.com/pantrypal/backend/internal/service"
)

// Server wires the application's services behind one HTTP server.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New builds the full application: database, Redis, vision client,
// services, handlers and routes.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Without an API key detection falls back to a fixed ingredient
	// set, which keeps local development usable.
	var vision service.VisionClient
	if cfg.GeminiAPIKey != "" {
		vision, err = service.NewGeminiVision(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
	} else {
		log.Printf("GEMINI_API_KEY not set, using stub vision client")
		vision = service.StubVision{}
	}

	// Photo storage is optional; detection works without it.
	var imageService *service.ImageService
	if s3Config, err := config.NewS3Config(ctx); err != nil {
		log.Printf("S3 unavailable, ingredient photos will not be stored: %v", err)
	} else {
		imageService = service.NewImageService(s3Config)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	detectionService := service.NewDetectionService(redisClient, vision, recipeService)
	feedbackService := service.NewFeedbackService(db)

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, detectionService, authService)
	detectHandler := api.NewDetectHandler(detectionService, imageService, middleware.NewDetectionRateLimiter(redisClient))
	feedbackHandler := api.NewFeedbackHandler(feedbackService)

	r := router.SetupRouter(authHandler, recipeHandler, detectHandler, feedbackHandler)

	return &Server{
		cfg:    cfg,
		router: r,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: r,
		},
	}, nil
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
