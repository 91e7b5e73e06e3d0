package calendar

import (
	"context"
	"fmt"
	"time"

	"scheduly/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Time zone attached to created events; matches the fixed +05:30 offset the
// whole assistant operates in.
const eventTimeZone = "Asia/Kolkata"

// GoogleCalendarService talks to the Google Calendar v3 API with a
// service-account credential.
type GoogleCalendarService struct {
	svc *gcal.Service
}

// NewGoogleCalendarService builds the client from service-account
// credentials. Inline JSON takes priority over a key file path.
func NewGoogleCalendarService(ctx context.Context, credentialsFile, credentialsJSON string) (*GoogleCalendarService, error) {
	var opts []option.ClientOption
	switch {
	case credentialsJSON != "":
		jwtCfg, err := google.JWTConfigFromJSON([]byte(credentialsJSON), gcal.CalendarScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse service-account credentials: %w", err)
		}
		opts = append(opts, option.WithHTTPClient(jwtCfg.Client(ctx)))
	case credentialsFile != "":
		opts = append(opts,
			option.WithCredentialsFile(credentialsFile),
			option.WithScopes(gcal.CalendarScope),
		)
	default:
		return nil, fmt.Errorf("no Google Calendar credentials configured")
	}

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleCalendarService{svc: svc}, nil
}

// FindConflicts lists events overlapping [start, end) on the given calendar.
func (g *GoogleCalendarService) FindConflicts(ctx context.Context, calendarID, start, end string) ([]BusyEvent, error) {
	events, err := g.svc.Events.List(calendarID).
		TimeMin(start).
		TimeMax(end).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}

	var busy []BusyEvent
	for _, item := range events.Items {
		// All-day events carry a date but no dateTime; they still occupy
		// the interval, so keep them with zero times.
		var startTime, endTime time.Time
		if item.Start != nil && item.Start.DateTime != "" {
			startTime, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		}
		if item.End != nil && item.End.DateTime != "" {
			endTime, _ = time.Parse(time.RFC3339, item.End.DateTime)
		}
		busy = append(busy, BusyEvent{
			Title: item.Summary,
			Start: startTime,
			End:   endTime,
		})
	}

	utils.GetLogger().Debug("Checked calendar availability",
		zap.String("calendarID", calendarID),
		zap.String("start", start),
		zap.Int("conflicts", len(busy)),
	)
	return busy, nil
}

// CreateEvent inserts the event and returns its HTML link.
func (g *GoogleCalendarService) CreateEvent(ctx context.Context, calendarID string, ev EventInput) (string, error) {
	event := &gcal.Event{
		Summary:     ev.Title,
		Description: ev.Summary,
		Start:       &gcal.EventDateTime{DateTime: ev.Start, TimeZone: eventTimeZone},
		End:         &gcal.EventDateTime{DateTime: ev.End, TimeZone: eventTimeZone},
	}

	created, err := g.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}

	utils.GetLogger().Info("Created calendar event",
		zap.String("calendarID", calendarID),
		zap.String("title", ev.Title),
		zap.String("start", ev.Start),
	)
	return created.HtmlLink, nil
}
