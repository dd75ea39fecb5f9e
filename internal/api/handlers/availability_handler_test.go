package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studynest/studyspaces-backend/internal/api/handlers"
	"github.com/studynest/studyspaces-backend/internal/domain/entities"
)

type stubAvailabilityService struct {
	snapshot entities.AvailabilitySnapshot
	err      error
}

func (s *stubAvailabilityService) Refresh(ctx context.Context) (entities.AvailabilitySnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubAvailabilityService) Snapshot() entities.AvailabilitySnapshot {
	return s.snapshot
}

func TestAvailabilityHandler_GetAvailability(t *testing.T) {
	snapshot := entities.AvailabilitySnapshot{
		FetchedAt: time.Date(2025, time.November, 26, 7, 30, 0, 0, time.UTC),
		Slots: []entities.AvailabilitySlot{
			{ResourceID: "101", Room: "2122", Status: "Available"},
		},
	}
	handler := handlers.NewAvailabilityHandler(&stubAvailabilityService{snapshot: snapshot})

	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	rr := httptest.NewRecorder()

	handler.GetAvailability(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got entities.AvailabilitySnapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Slots, 1)
	assert.Equal(t, "101", got.Slots[0].ResourceID)
}

func TestAvailabilityHandler_RefreshAvailability_SourceDown(t *testing.T) {
	handler := handlers.NewAvailabilityHandler(&stubAvailabilityService{err: errors.New("feed down")})

	req := httptest.NewRequest(http.MethodPost, "/api/availability/refresh", nil)
	rr := httptest.NewRecorder()

	handler.RefreshAvailability(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
