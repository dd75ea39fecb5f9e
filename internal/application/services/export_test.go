package services

import "time"

// SetClock overrides the service clock in tests.
func SetClock(s *AvailabilityService, now func() time.Time) {
	s.now = now
}
