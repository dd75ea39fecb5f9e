package availability

import (
	"context"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
)

// MockAdapter serves a fixed set of raw events, used when no feed is
// configured and in tests.
type MockAdapter struct {
	Events []entities.RawAvailabilityEvent
}

// NewMockAdapter creates a mock availability source.
func NewMockAdapter(events []entities.RawAvailabilityEvent) providers.AvailabilitySource {
	return &MockAdapter{Events: events}
}

// Fetch returns the configured events.
func (a *MockAdapter) Fetch(ctx context.Context) ([]entities.RawAvailabilityEvent, error) {
	return a.Events, nil
}
