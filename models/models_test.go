package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	p := ParsedIntent{}
	p.ApplyDefaults()

	assert.Equal(t, DefaultTitle, p.Title)
	assert.Equal(t, DefaultSummary, p.Summary)
	assert.Equal(t, TimeUnknown, p.Start)
	assert.Equal(t, TimeUnknown, p.End)
}

func TestApplyDefaultsKeepsExplicitFields(t *testing.T) {
	p := ParsedIntent{Title: "Standup", Start: "2026-09-01T16:00:00+05:30"}
	p.ApplyDefaults()

	assert.Equal(t, "Standup", p.Title)
	assert.Equal(t, "2026-09-01T16:00:00+05:30", p.Start)
	assert.Equal(t, TimeUnknown, p.End)
}

func TestTimeSlotLabel(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	slot := TimeSlot{
		Start: time.Date(2026, 9, 1, 16, 0, 0, 0, ist),
		End:   time.Date(2026, 9, 1, 17, 0, 0, 0, ist),
	}
	assert.Equal(t, "04:00 PM - 05:00 PM", slot.Label())
}
