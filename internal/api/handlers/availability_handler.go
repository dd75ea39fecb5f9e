package handlers

import (
	"context"
	"net/http"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
)

// AvailabilityService defines the availability operations used by the handler.
type AvailabilityService interface {
	Refresh(ctx context.Context) (entities.AvailabilitySnapshot, error)
	Snapshot() entities.AvailabilitySnapshot
}

// AvailabilityHandler serves the room availability snapshot.
type AvailabilityHandler struct {
	service AvailabilityService
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(service AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
	}
}

// GetAvailability handles GET /api/availability
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Snapshot())
}

// RefreshAvailability handles POST /api/availability/refresh
func (h *AvailabilityHandler) RefreshAvailability(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Refresh(r.Context())
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to refresh availability")
		return
	}

	respondWithJSON(w, http.StatusOK, snapshot)
}
