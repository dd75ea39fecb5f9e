package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// StudySpaceHandler handles study-space-related HTTP requests
type StudySpaceHandler struct {
	spaceRepo repositories.StudySpaceRepository
}

// NewStudySpaceHandler creates a new study space handler
func NewStudySpaceHandler(spaceRepo repositories.StudySpaceRepository) *StudySpaceHandler {
	return &StudySpaceHandler{
		spaceRepo: spaceRepo,
	}
}

// ListStudySpaces handles GET /api/study-spaces
func (h *StudySpaceHandler) ListStudySpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.spaceRepo.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list study spaces")
		return
	}

	respondWithJSON(w, http.StatusOK, spaces)
}

// GetStudySpace handles GET /api/study-spaces/{id}
func (h *StudySpaceHandler) GetStudySpace(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	space, err := h.spaceRepo.GetByID(r.Context(), spaceID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, space)
}

// pathID parses a numeric path parameter, responding with 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, name+" must be numeric")
		return 0, false
	}
	return id, true
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps a typed application error to its HTTP status.
// Untyped errors never leak details to the client.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, appErr.Message)
		case apperrors.ErrorTypeForbidden:
			respondWithError(w, http.StatusForbidden, appErr.Message)
		case apperrors.ErrorTypeConflict:
			respondWithError(w, http.StatusConflict, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
