package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studynest/studyspaces-backend/internal/api/handlers"
	"github.com/studynest/studyspaces-backend/internal/api/middleware"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	studySpaceHandler   *handlers.StudySpaceHandler
	reviewHandler       *handlers.ReviewHandler
	uploadHandler       *handlers.UploadHandler
	favoriteHandler     *handlers.FavoriteHandler
	submissionHandler   *handlers.SubmissionHandler
	availabilityHandler *handlers.AvailabilityHandler

	identityProvider providers.IdentityProvider
	cacheMiddleware  *middleware.CacheMiddleware
	metrics          *observability.Metrics
	uploadDir        string
}

// NewRouter creates a new router
func NewRouter(
	studySpaceHandler *handlers.StudySpaceHandler,
	reviewHandler *handlers.ReviewHandler,
	uploadHandler *handlers.UploadHandler,
	favoriteHandler *handlers.FavoriteHandler,
	submissionHandler *handlers.SubmissionHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	identityProvider providers.IdentityProvider,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
	uploadDir string,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		studySpaceHandler:   studySpaceHandler,
		reviewHandler:       reviewHandler,
		uploadHandler:       uploadHandler,
		favoriteHandler:     favoriteHandler,
		submissionHandler:   submissionHandler,
		availabilityHandler: availabilityHandler,

		identityProvider: identityProvider,
		cacheMiddleware:  cacheMiddleware,
		metrics:          metrics,
		uploadDir:        uploadDir,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	authed := middleware.AuthMiddleware(r.identityProvider)
	protect := func(h http.HandlerFunc) http.Handler {
		return authed(h)
	}

	// Health and metrics endpoints
	r.mux.HandleFunc("GET /api/health", handlers.HealthCheck)
	r.mux.Handle("GET /metrics", promhttp.Handler())

	// Study space endpoints
	r.mux.HandleFunc("GET /api/study-spaces", r.studySpaceHandler.ListStudySpaces)
	r.mux.HandleFunc("GET /api/study-spaces/{id}", r.studySpaceHandler.GetStudySpace)

	// Review endpoints
	r.mux.HandleFunc("GET /api/areas/{areaId}/reviews", r.reviewHandler.ListReviews)
	r.mux.Handle("POST /api/areas/{areaId}/reviews", protect(r.reviewHandler.CreateReview))
	r.mux.Handle("POST /api/reviews/upload-photos", protect(r.uploadHandler.UploadPhotos))
	r.mux.Handle("PUT /api/reviews/{reviewId}/helpful", protect(r.reviewHandler.MarkHelpful))
	r.mux.Handle("DELETE /api/reviews/{reviewId}", protect(r.reviewHandler.DeleteReview))

	// Favorite endpoints
	r.mux.Handle("GET /api/users/{userId}/favorites", protect(r.favoriteHandler.ListFavorites))
	r.mux.Handle("POST /api/users/{userId}/favorites", protect(r.favoriteHandler.CreateFavorite))
	r.mux.Handle("DELETE /api/users/{userId}/favorites/{spaceId}", protect(r.favoriteHandler.DeleteFavorite))

	// Submission (moderation queue) endpoints
	r.mux.Handle("GET /api/submissions", protect(r.submissionHandler.ListSubmissions))
	r.mux.Handle("GET /api/submissions/{id}", protect(r.submissionHandler.GetSubmission))
	r.mux.Handle("POST /api/submissions", protect(r.submissionHandler.CreateSubmission))
	r.mux.Handle("PUT /api/submissions/{id}/status", protect(r.submissionHandler.UpdateSubmissionStatus))

	// Room availability endpoints
	r.mux.HandleFunc("GET /api/availability", r.availabilityHandler.GetAvailability)
	r.mux.HandleFunc("POST /api/availability/refresh", r.availabilityHandler.RefreshAvailability)

	// Uploaded review photos, served read-only
	r.mux.Handle("GET /uploads/",
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadDir))))

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.MetricsMiddleware(r.metrics)(handler)

	// Compression and cache headers
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
