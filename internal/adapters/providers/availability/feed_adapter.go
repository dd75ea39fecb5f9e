package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// FeedAdapter pulls raw booking-grid events from an HTTP JSON feed. The feed
// is the scraped export of the library's room booking calendar.
type FeedAdapter struct {
	url    string
	client *http.Client
}

// NewFeedAdapter creates a new availability feed adapter.
func NewFeedAdapter(url string) providers.AvailabilitySource {
	return &FeedAdapter{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch retrieves the current raw events from the feed.
func (a *FeedAdapter) Fetch(ctx context.Context) ([]entities.RawAvailabilityEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build availability feed request", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to fetch availability feed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewInternalError(
			fmt.Sprintf("availability feed returned status %d", resp.StatusCode), nil)
	}

	var events []entities.RawAvailabilityEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, apperrors.NewInternalError("failed to decode availability feed", err)
	}

	return events, nil
}
