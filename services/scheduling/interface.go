package scheduling

import (
	"context"

	"scheduly/models"
)

// SchedulingService runs one booking request end to end and always produces
// exactly one terminal outcome. It never panics and never retries a failed
// external call.
type SchedulingService interface {
	Schedule(ctx context.Context, message, calendarID string) models.BookingOutcome
}

// IntentSource is the slice of the intelligence service the pipeline needs.
// A (nil, nil) return means extraction found nothing and local fallback
// parsing should run; a non-nil error means the model service itself failed
// and the request is terminal.
type IntentSource interface {
	ExtractIntent(ctx context.Context, message, currentDate string) (*models.ParsedIntent, error)
}
