package scheduling

import (
	"context"
	"errors"
	"time"

	"scheduly/models"
	"scheduly/services/calendar"
)

// fakeCalendar is an in-memory CalendarService for pipeline and suggester
// tests. Events are stored as parsed intervals; conflicts use half-open
// overlap semantics.
type fakeCalendar struct {
	events     []calendar.BusyEvent
	listErr    error
	insertErr  error
	created    []calendar.EventInput
	listCalls  int
	insertLink string
}

func (f *fakeCalendar) FindConflicts(_ context.Context, _, start, end string) ([]calendar.BusyEvent, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	startT, err := parseTimestamp(start)
	if err != nil {
		return nil, err
	}
	endT, err := parseTimestamp(end)
	if err != nil {
		return nil, err
	}

	var busy []calendar.BusyEvent
	for _, ev := range f.events {
		if ev.Start.Before(endT) && ev.End.After(startT) {
			busy = append(busy, ev)
		}
	}
	return busy, nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, _ string, ev calendar.EventInput) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.created = append(f.created, ev)

	// A created event occupies its slot for subsequent checks, so a
	// repeated identical request conflicts with the first booking.
	startT, _ := parseTimestamp(ev.Start)
	endT, _ := parseTimestamp(ev.End)
	f.events = append(f.events, calendar.BusyEvent{Title: ev.Title, Start: startT, End: endT})

	link := f.insertLink
	if link == "" {
		link = "https://calendar.google.com/event?eid=test"
	}
	return link, nil
}

// fakeIntentSource returns a canned extraction result.
type fakeIntentSource struct {
	intent *models.ParsedIntent
	err    error
}

func (f *fakeIntentSource) ExtractIntent(_ context.Context, _, _ string) (*models.ParsedIntent, error) {
	return f.intent, f.err
}

var errBackendDown = errors.New("backend unreachable")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestPipeline(intent *fakeIntentSource, cal *fakeCalendar, now time.Time) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Intent:    intent,
		Calendar:  cal,
		Suggester: &SlotSuggester{Calendar: cal, Clock: fixedClock(now)},
		Clock:     fixedClock(now),
	}
}
