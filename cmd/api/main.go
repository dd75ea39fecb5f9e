package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/studynest/studyspaces-backend/internal/adapters/cache"
	"github.com/studynest/studyspaces-backend/internal/adapters/database"
	availabilitysource "github.com/studynest/studyspaces-backend/internal/adapters/providers/availability"
	"github.com/studynest/studyspaces-backend/internal/adapters/providers/identity"
	"github.com/studynest/studyspaces-backend/internal/adapters/storage"
	"github.com/studynest/studyspaces-backend/internal/api/handlers"
	"github.com/studynest/studyspaces-backend/internal/api/middleware"
	"github.com/studynest/studyspaces-backend/internal/api/routes"
	"github.com/studynest/studyspaces-backend/internal/application/services"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/clients/postgres"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/clients/redis"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/observability"
	"github.com/studynest/studyspaces-backend/pkg/config"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("studyspaces-api", cfg.Environment)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized successfully")

	// Redis is optional; the API serves uncached without it.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize Redis client, running without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters
	baseSpaceAdapter := database.NewStudySpaceAdapter(pgClient)
	var spaceAdapter repositories.StudySpaceRepository
	if cacheProvider != nil {
		spaceAdapter = database.NewCachedStudySpaceAdapter(baseSpaceAdapter, cacheProvider)
		logger.Info().Msg("Study space adapter wrapped with caching layer")
	} else {
		spaceAdapter = baseSpaceAdapter
	}

	reviewAdapter := database.NewReviewAdapter(pgClient)
	favoriteAdapter := database.NewFavoriteAdapter(pgClient)
	profileAdapter := database.NewProfileAdapter(pgClient)

	submissionAdapter, err := database.NewSubmissionAdapter(ctx, pgClient)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize submission adapter")
	}

	identityProvider := identity.NewJWTAdapter(cfg.Auth.JWTSecret)

	uploadDir := filepath.Join(cfg.Uploads.Dir, "reviews")
	storageProvider, err := storage.NewLocalAdapter(uploadDir, cfg.Uploads.PublicBaseURL+"/uploads/reviews")
	if err != nil {
		logger.Fatal().Err(err).Str("dir", uploadDir).Msg("Failed to prepare uploads directory")
	}

	var availabilityFeed providers.AvailabilitySource
	if cfg.Availability.FeedURL != "" {
		availabilityFeed = availabilitysource.NewFeedAdapter(cfg.Availability.FeedURL)
		logger.Info().Str("url", cfg.Availability.FeedURL).Msg("Availability feed configured")
	} else {
		availabilityFeed = availabilitysource.NewMockAdapter(nil)
		logger.Warn().Msg("AVAILABILITY_FEED_URL is not set; availability snapshot will be empty")
	}

	// Initialize services
	reviewService := services.NewReviewService(reviewAdapter, profileAdapter)
	availabilityService := services.NewAvailabilityService(availabilityFeed)

	if cfg.Availability.FeedURL != "" {
		if _, err := availabilityService.Refresh(ctx); err != nil {
			logger.Warn().Err(err).Msg("Initial availability refresh failed")
		}
	}

	// Initialize handlers
	studySpaceHandler := handlers.NewStudySpaceHandler(spaceAdapter)
	reviewHandler := handlers.NewReviewHandler(reviewService, reviewAdapter)
	uploadHandler := handlers.NewUploadHandler(storageProvider, metrics)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteAdapter)
	submissionHandler := handlers.NewSubmissionHandler(submissionAdapter)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		logger.Info().Msg("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		studySpaceHandler,
		reviewHandler,
		uploadHandler,
		favoriteHandler,
		submissionHandler,
		availabilityHandler,
		identityProvider,
		cacheMiddleware,
		metrics,
		uploadDir,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
