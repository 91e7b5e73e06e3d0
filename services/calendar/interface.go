package calendar

import (
	"context"
	"time"
)

// BusyEvent is an existing calendar event overlapping a requested interval.
type BusyEvent struct {
	Title string
	Start time.Time
	End   time.Time
}

// EventInput carries the fields needed to create a calendar event. Start and
// End are RFC3339 timestamps in the assistant's fixed offset.
type EventInput struct {
	Title   string
	Summary string
	Start   string
	End     string
}

// CalendarService is the outbound contract against the calendar backend.
// Availability is never cached: the backing calendar can change between
// calls from other clients, so every check hits the live API.
type CalendarService interface {
	// FindConflicts lists events on the calendar overlapping [start, end),
	// ordered by start time with recurring events expanded. The slot is
	// available iff the result is empty. A backend fault is returned as an
	// error, never as an empty (optimistically available) result.
	FindConflicts(ctx context.Context, calendarID, start, end string) ([]BusyEvent, error)

	// CreateEvent inserts the event and returns its browser link.
	CreateEvent(ctx context.Context, calendarID string, ev EventInput) (string, error)
}
