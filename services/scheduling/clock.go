package scheduling

import "time"

// Location is the assistant's single fixed offset (UTC+05:30). All wall-clock
// reasoning, parsing and formatting happens in this zone.
var Location = time.FixedZone("IST", 5*60*60+30*60)

// timestampLayout is the wire form for event times, e.g.
// "2026-09-01T16:00:00+05:30".
const timestampLayout = "2006-01-02T15:04:05-07:00"

// displayLayout is the human-readable form used in confirmations, e.g.
// "04:00 PM on 01 Sep 2026".
const displayLayout = "03:04 PM on 02 Jan 2006"

// parseTimestamp parses a wire timestamp into the fixed zone.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(Location), nil
}

// formatTimestamp renders t as a wire timestamp in the fixed zone.
func formatTimestamp(t time.Time) string {
	return t.In(Location).Format(timestampLayout)
}

// formatDisplay renders t in the 12-hour confirmation format.
func formatDisplay(t time.Time) string {
	return t.In(Location).Format(displayLayout)
}
