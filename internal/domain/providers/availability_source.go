package providers

import (
	"context"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
)

// AvailabilitySource fetches raw booking-grid events for study rooms.
type AvailabilitySource interface {
	Fetch(ctx context.Context) ([]entities.RawAvailabilityEvent, error)
}
