package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/studynest/studyspaces-backend/internal/api/middleware"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
)

// FavoriteHandler handles favorite-related HTTP requests
type FavoriteHandler struct {
	favoriteRepo repositories.FavoriteRepository
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteRepo repositories.FavoriteRepository) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteRepo: favoriteRepo,
	}
}

// callerForUser resolves the authenticated caller and enforces that the path
// userId matches. Favorites are strictly private to their owner.
func callerForUser(w http.ResponseWriter, r *http.Request) (*providers.Identity, bool) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	if r.PathValue("userId") != caller.ID {
		respondWithError(w, http.StatusForbidden, "cannot access another user's favorites")
		return nil, false
	}
	return caller, true
}

// ListFavorites handles GET /api/users/{userId}/favorites
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerForUser(w, r)
	if !ok {
		return
	}

	favorites, err := h.favoriteRepo.ListByUser(r.Context(), caller.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list favorites")
		return
	}

	respondWithJSON(w, http.StatusOK, favorites)
}

type createFavoriteRequest struct {
	SpaceID int64 `json:"spaceId"`
}

// CreateFavorite handles POST /api/users/{userId}/favorites
func (h *FavoriteHandler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerForUser(w, r)
	if !ok {
		return
	}

	var payload createFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.SpaceID == 0 {
		respondWithError(w, http.StatusBadRequest, "spaceId is required")
		return
	}

	favorite, err := h.favoriteRepo.Create(r.Context(), caller.ID, payload.SpaceID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, favorite)
}

// DeleteFavorite handles DELETE /api/users/{userId}/favorites/{spaceId}
func (h *FavoriteHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerForUser(w, r)
	if !ok {
		return
	}

	spaceID, ok := pathID(w, r, "spaceId")
	if !ok {
		return
	}

	if err := h.favoriteRepo.Delete(r.Context(), caller.ID, spaceID); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
