package services

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/observability"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

var clockTimePattern = regexp.MustCompile(`\d{1,2}:\d{2}\s*(?:am|pm)`)

// ParseEventTitle splits a booking-grid event title into its time label,
// status, and room. Titles come in two shapes:
//
//	"8:00am - 9:00am - Available"
//	"8:00am Wednesday, November 26, 2025 - 2nd Floor - 2122"
//
// The last segment is the status and, when more than two segments are
// present, the second-to-last is the room. The room here is a fallback;
// the feed's own room field wins when set.
func ParseEventTitle(title string) (timeLabel, status, room string) {
	parts := strings.Split(title, " - ")
	status = strings.TrimSpace(parts[len(parts)-1])
	if len(parts) > 2 {
		room = strings.TrimSpace(parts[len(parts)-2])
		timeLabel = strings.TrimSpace(strings.Join(parts[:len(parts)-2], " - "))
	} else {
		room = "Unknown"
		timeLabel = strings.TrimSpace(parts[0])
	}
	return timeLabel, status, room
}

// ParseTimeRange resolves the clock times in a time label against the date
// of now. A label with a single time is a one-hour slot. A range whose end
// reads before its start crosses midnight, so the end rolls to the next day.
func ParseTimeRange(timeLabel string, now time.Time) (time.Time, time.Time, error) {
	matches := clockTimePattern.FindAllString(strings.ToLower(timeLabel), -1)
	if len(matches) == 0 {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("no clock time in label: " + timeLabel)
	}

	start, err := atClockTime(matches[0], now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if len(matches) == 1 {
		return start, start.Add(time.Hour), nil
	}

	end, err := atClockTime(matches[1], now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end, nil
}

func atClockTime(clock string, now time.Time) (time.Time, error) {
	parsed, err := time.Parse("3:04pm", strings.ReplaceAll(clock, " ", ""))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("unparseable clock time: " + clock)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}

// AvailabilityService keeps an in-memory snapshot of upcoming room
// availability, refreshed on demand from the configured source.
type AvailabilityService struct {
	source providers.AvailabilitySource
	now    func() time.Time

	mu       sync.RWMutex
	snapshot entities.AvailabilitySnapshot
}

// NewAvailabilityService creates a new availability service.
func NewAvailabilityService(source providers.AvailabilitySource) *AvailabilityService {
	return &AvailabilityService{
		source: source,
		now:    time.Now,
	}
}

// Refresh fetches the source, parses every event, drops slots that already
// started, and replaces the snapshot. Events whose titles cannot be parsed
// are skipped rather than failing the whole refresh.
func (s *AvailabilityService) Refresh(ctx context.Context) (entities.AvailabilitySnapshot, error) {
	events, err := s.source.Fetch(ctx)
	if err != nil {
		return entities.AvailabilitySnapshot{}, err
	}

	now := s.now()
	slots := make([]entities.AvailabilitySlot, 0, len(events))
	for _, event := range events {
		timeLabel, status, parsedRoom := ParseEventTitle(event.Title)
		start, end, err := ParseTimeRange(timeLabel, now)
		if err != nil {
			observability.GetLogger().Warn().
				Str("title", event.Title).
				Err(err).
				Msg("Skipping unparseable availability event")
			continue
		}
		if start.Before(now) {
			continue
		}

		room := event.Room
		if room == "" {
			room = parsedRoom
		}
		slots = append(slots, entities.AvailabilitySlot{
			ResourceID: event.ResourceID,
			Room:       room,
			TimeLabel:  timeLabel,
			Status:     status,
			Start:      start,
			End:        end,
		})
	}

	snapshot := entities.AvailabilitySnapshot{
		FetchedAt: now,
		Slots:     slots,
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	return snapshot, nil
}

// Snapshot returns the last refreshed snapshot. Before the first refresh the
// snapshot is empty with a zero FetchedAt.
func (s *AvailabilityService) Snapshot() entities.AvailabilitySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
