package scheduling

import (
	"context"
	"strings"
	"time"

	"scheduly/models"
	"scheduly/services/calendar"
	"scheduly/utils"

	"go.uber.org/zap"
)

const (
	suggestionBaseHour  = 9 // first candidate starts at 09:00 local
	suggestionSlotCount = 8 // candidates every 2 hours, up to 23:00
	noSlotsMessage      = "No available slots found today."
)

// SlotSuggester scans a fixed daily window for open 1-hour slots. Each call
// performs live availability checks; results are never cached because the
// calendar can change between calls.
type SlotSuggester struct {
	Calendar calendar.CalendarService
	Clock    func() time.Time
}

func (s *SlotSuggester) now() time.Time {
	if s.Clock != nil {
		return s.Clock().In(Location)
	}
	return time.Now().In(Location)
}

// SuggestSlots returns a human-readable comma-joined list of open slots on
// today's date, or noSlotsMessage when everything is past or booked. A
// failed availability check skips that candidate rather than aborting the
// scan; the strict check happens at booking time.
func (s *SlotSuggester) SuggestSlots(ctx context.Context, calendarID string) string {
	now := s.now()
	base := time.Date(now.Year(), now.Month(), now.Day(), suggestionBaseHour, 0, 0, 0, Location)

	var labels []string
	for i := 0; i < suggestionSlotCount; i++ {
		slot := models.TimeSlot{
			Start: base.Add(time.Duration(i) * 2 * time.Hour),
		}
		slot.End = slot.Start.Add(time.Hour)

		if !slot.Start.After(now) {
			continue
		}

		busy, err := s.Calendar.FindConflicts(ctx, calendarID,
			formatTimestamp(slot.Start), formatTimestamp(slot.End))
		if err != nil {
			utils.GetLogger().Warn("Skipping slot candidate, availability check failed",
				zap.String("calendarID", calendarID),
				zap.Time("slotStart", slot.Start),
				zap.Error(err),
			)
			continue
		}
		if len(busy) == 0 {
			labels = append(labels, slot.Label())
		}
	}

	if len(labels) == 0 {
		return noSlotsMessage
	}
	return strings.Join(labels, ", ")
}
