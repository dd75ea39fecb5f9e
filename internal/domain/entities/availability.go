package entities

import "time"

// RawAvailabilityEvent is one unparsed event from a room booking grid.
type RawAvailabilityEvent struct {
	ResourceID string `json:"eid"`
	Room       string `json:"room"`
	Title      string `json:"title"`
}

// AvailabilitySlot is a parsed, future-dated slot of a study room.
type AvailabilitySlot struct {
	ResourceID string    `json:"eid"`
	Room       string    `json:"room"`
	TimeLabel  string    `json:"time"`
	Status     string    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// AvailabilitySnapshot is the most recent set of parsed slots.
type AvailabilitySnapshot struct {
	FetchedAt time.Time          `json:"fetched_at"`
	Slots     []AvailabilitySlot `json:"slots"`
}
