package models

// TimeUnknown is the sentinel the extractor and the time parser return when
// no usable time could be derived from the message.
const TimeUnknown = "unknown"

// Defaults applied when the model omits a field.
const (
	DefaultTitle   = "Meeting"
	DefaultSummary = "Meeting scheduled via Scheduly"
)

// ParsedIntent is the structured booking request derived from free text.
// Start and End are RFC3339 timestamps with a fixed +05:30 offset, or
// TimeUnknown when no time was stated.
type ParsedIntent struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// ApplyDefaults fills the title/summary defaults and marks missing times as
// unknown, mirroring what the assistant prompt asks the model to do.
func (p *ParsedIntent) ApplyDefaults() {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Summary == "" {
		p.Summary = DefaultSummary
	}
	if p.Start == "" {
		p.Start = TimeUnknown
	}
	if p.End == "" {
		p.End = TimeUnknown
	}
}
