package models

import (
	"fmt"
	"time"
)

// TimeSlot is a half-open interval [Start, End) in the assistant's fixed
// offset. End is always after Start; a missing end defaults to Start plus
// one hour before a slot is ever constructed.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Label renders the slot as a 12-hour clock range, e.g. "04:00 PM - 05:00 PM".
// This is the one canonical display format for suggested slots.
func (s TimeSlot) Label() string {
	return fmt.Sprintf("%s - %s", s.Start.Format("03:04 PM"), s.End.Format("03:04 PM"))
}
