package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/studynest/studyspaces-backend/internal/api/middleware"
	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
)

// SubmissionHandler handles moderation queue HTTP requests
type SubmissionHandler struct {
	submissionRepo repositories.SubmissionRepository
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionRepo repositories.SubmissionRepository) *SubmissionHandler {
	return &SubmissionHandler{
		submissionRepo: submissionRepo,
	}
}

// ListSubmissions handles GET /api/submissions
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	status := entities.SubmissionStatus(r.URL.Query().Get("status"))
	if status != "" && !entities.ValidSubmissionStatus(status) {
		respondWithError(w, http.StatusBadRequest, "status must be pending, approved, or rejected")
		return
	}

	submissions, err := h.submissionRepo.List(r.Context(), status)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}

	respondWithJSON(w, http.StatusOK, submissions)
}

// GetSubmission handles GET /api/submissions/{id}
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	submission, err := h.submissionRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, submission)
}

type createSubmissionRequest struct {
	Name         string   `json:"name"`
	Building     string   `json:"building"`
	Campus       string   `json:"campus"`
	Description  string   `json:"description"`
	NoiseLevel   string   `json:"noise_level"`
	PrivacyLevel string   `json:"privacy_level"`
	Amenities    []string `json:"amenities"`
	Photos       []string `json:"photos"`
}

// CreateSubmission handles POST /api/submissions
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	var missing []string
	for field, value := range map[string]string{
		"name":     payload.Name,
		"building": payload.Building,
		"campus":   payload.Campus,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		respondWithError(w, http.StatusBadRequest,
			"missing required fields: "+strings.Join(missing, ", "))
		return
	}

	submission := &entities.Submission{
		UserID:       caller.ID,
		Name:         payload.Name,
		Building:     payload.Building,
		Campus:       payload.Campus,
		Description:  payload.Description,
		NoiseLevel:   payload.NoiseLevel,
		PrivacyLevel: payload.PrivacyLevel,
		Amenities:    payload.Amenities,
		Photos:       payload.Photos,
	}

	if err := h.submissionRepo.Create(r.Context(), submission); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, submission)
}

type updateStatusRequest struct {
	Status entities.SubmissionStatus `json:"status"`
}

// UpdateSubmissionStatus handles PUT /api/submissions/{id}/status
func (h *SubmissionHandler) UpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var payload updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !entities.ValidSubmissionStatus(payload.Status) {
		respondWithError(w, http.StatusBadRequest, "status must be pending, approved, or rejected")
		return
	}

	submission, err := h.submissionRepo.UpdateStatus(r.Context(), id, payload.Status)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, submission)
}
