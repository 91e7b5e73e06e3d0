package scheduling

import (
	"context"
	"fmt"
	"time"

	"scheduly/models"
	"scheduly/services/calendar"
	"scheduly/utils"

	"go.uber.org/zap"
)

// User-facing terminal error messages.
const (
	msgInvalidEndFormat    = "Invalid time format detected"
	msgInvalidTimeFormat   = "Invalid time format"
	msgSlotPassed          = "Cannot book. Time slot has already passed."
	msgSlotFull            = "Cannot book. Time slot is already full."
	msgAvailabilityFailure = "Could not check calendar availability"
)

// DefaultSchedulingService is the booking decision pipeline: it combines
// the intent extractor, the regex time-parser fallback, the availability
// check and the suggestion engine into one terminal outcome per request.
//
// The availability check and the subsequent create are not atomic against
// the external calendar; a concurrent booking from another client between
// the two calls can still double-book. That window is accepted — the
// calendar service is the system of record and serializes its own writes.
type DefaultSchedulingService struct {
	Intent    IntentSource
	Calendar  calendar.CalendarService
	Suggester *SlotSuggester

	// CallTimeout bounds each outbound call; zero means 30 seconds.
	CallTimeout time.Duration

	// Clock overrides wall-clock time in tests.
	Clock func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().In(Location)
	}
	return time.Now().In(Location)
}

func (s *DefaultSchedulingService) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.CallTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func (s *DefaultSchedulingService) suggest(ctx context.Context, calendarID string) string {
	cctx, cancel := s.callCtx(ctx)
	defer cancel()
	return s.Suggester.SuggestSlots(cctx, calendarID)
}

// Schedule interprets the message and books, suggests or rejects.
func (s *DefaultSchedulingService) Schedule(ctx context.Context, message, calendarID string) models.BookingOutcome {
	logger := utils.GetLogger()
	now := s.now()

	cctx, cancel := s.callCtx(ctx)
	intent, err := s.Intent.ExtractIntent(cctx, message, now.Format("2006-01-02"))
	cancel()
	if err != nil {
		// The model service itself is unreachable or erroring. This is
		// terminal: falling back to local parsing here would mask an
		// outage, not recover from an empty extraction.
		logger.Error("Intent extraction failed", zap.Error(err))
		return models.ErrorOutcome(err.Error())
	}

	if intent == nil {
		intent = s.fallbackIntent(message, now)
	}
	if intent == nil {
		return models.SuggestOutcome(s.suggest(ctx, calendarID))
	}

	if intent.Start == models.TimeUnknown {
		return models.SuggestOutcome(s.suggest(ctx, calendarID))
	}

	if intent.End == models.TimeUnknown {
		startT, perr := parseTimestamp(intent.Start)
		if perr != nil {
			return models.ErrorOutcome(msgInvalidEndFormat)
		}
		intent.End = formatTimestamp(startT.Add(time.Hour))
	}

	startT, serr := parseTimestamp(intent.Start)
	endT, eerr := parseTimestamp(intent.End)
	if serr != nil || eerr != nil {
		return models.ErrorOutcome(msgInvalidTimeFormat)
	}

	if startT.Before(now) {
		return models.RejectedOutcome(msgSlotPassed, s.suggest(ctx, calendarID))
	}

	cctx, cancel = s.callCtx(ctx)
	busy, cerr := s.Calendar.FindConflicts(cctx, calendarID, intent.Start, intent.End)
	cancel()
	if cerr != nil {
		logger.Error("Availability check failed", zap.String("calendarID", calendarID), zap.Error(cerr))
		return models.ErrorOutcome(msgAvailabilityFailure)
	}
	if len(busy) > 0 {
		return models.RejectedOutcome(conflictMessage(busy[0]), s.suggest(ctx, calendarID))
	}

	cctx, cancel = s.callCtx(ctx)
	link, ierr := s.Calendar.CreateEvent(cctx, calendarID, calendar.EventInput{
		Title:   intent.Title,
		Summary: intent.Summary,
		Start:   intent.Start,
		End:     intent.End,
	})
	cancel()
	if ierr != nil {
		logger.Error("Event creation failed", zap.String("calendarID", calendarID), zap.Error(ierr))
		return models.ErrorOutcome(fmt.Sprintf("Failed to create calendar event: %v", ierr))
	}

	logger.Info("Booking confirmed",
		zap.String("calendarID", calendarID),
		zap.String("title", intent.Title),
		zap.String("start", intent.Start),
	)
	return models.ConfirmedOutcome(
		intent.Title,
		intent.Summary,
		formatDisplay(startT),
		formatDisplay(endT),
		link,
	)
}

// fallbackIntent synthesizes a default one-hour intent from the regex time
// parser when structured extraction came back empty. Returns nil when the
// message carries no recognizable time either.
func (s *DefaultSchedulingService) fallbackIntent(message string, now time.Time) *models.ParsedIntent {
	start := ParseTimeExpression(message, now)
	if start == models.TimeUnknown {
		return nil
	}
	startT, err := parseTimestamp(start)
	if err != nil {
		return nil
	}
	return &models.ParsedIntent{
		Title:   models.DefaultTitle,
		Summary: models.DefaultSummary,
		Start:   start,
		End:     formatTimestamp(startT.Add(time.Hour)),
	}
}

// conflictMessage names the booking that occupies the requested slot so the
// user can see what they collided with.
func conflictMessage(first calendar.BusyEvent) string {
	if first.Title == "" {
		return msgSlotFull
	}
	if first.Start.IsZero() || first.End.IsZero() {
		return fmt.Sprintf("%s %q occupies this slot.", msgSlotFull, first.Title)
	}
	return fmt.Sprintf("%s %q is booked from %s to %s.", msgSlotFull, first.Title,
		first.Start.In(Location).Format("03:04 PM"),
		first.End.In(Location).Format("03:04 PM"))
}
