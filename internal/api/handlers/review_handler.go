package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/studynest/studyspaces-backend/internal/api/middleware"
	"github.com/studynest/studyspaces-backend/internal/application/services"
	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
)

// ReviewCreator defines the review creation operation used by the handler.
type ReviewCreator interface {
	Create(ctx context.Context, caller *providers.Identity, areaID int64, input services.ReviewInput) (*entities.Review, error)
}

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	creator    ReviewCreator
	reviewRepo repositories.ReviewRepository
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(creator ReviewCreator, reviewRepo repositories.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{
		creator:    creator,
		reviewRepo: reviewRepo,
	}
}

// ListReviews handles GET /api/areas/{areaId}/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	areaID, ok := pathID(w, r, "areaId")
	if !ok {
		return
	}

	reviews, err := h.reviewRepo.ListByArea(r.Context(), areaID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}

type createReviewRequest struct {
	Rating  int      `json:"rating"`
	Content string   `json:"content"`
	Comment string   `json:"comment"`
	Photos  []string `json:"photos"`
}

// CreateReview handles POST /api/areas/{areaId}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	areaID, ok := pathID(w, r, "areaId")
	if !ok {
		return
	}

	var payload createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	// Older frontends send the review text as "comment".
	content := payload.Content
	if content == "" {
		content = payload.Comment
	}

	review, err := h.creator.Create(r.Context(), caller, areaID, services.ReviewInput{
		Rating:  payload.Rating,
		Content: content,
		Photos:  payload.Photos,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

// MarkHelpful handles PUT /api/reviews/{reviewId}/helpful
func (h *ReviewHandler) MarkHelpful(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(w, r, "reviewId")
	if !ok {
		return
	}

	helpful, err := h.reviewRepo.IncrementHelpful(r.Context(), reviewID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"helpful": helpful})
}

// DeleteReview handles DELETE /api/reviews/{reviewId}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	reviewID, ok := pathID(w, r, "reviewId")
	if !ok {
		return
	}

	if err := h.reviewRepo.DeleteOwned(r.Context(), reviewID, caller.ID); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
