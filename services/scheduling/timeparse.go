package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"scheduly/models"
)

// timePattern pairs a regexp with a builder that renders the matched clock
// time as a wire timestamp on the current date.
type timePattern struct {
	re    *regexp.Regexp
	build func(date string, m []string) string
}

// Ordered patterns, first match wins: PM hour-only, AM hour-only,
// PM hour:minute, AM hour:minute. 12-hour to 24-hour conversion: 12 AM is
// hour 0, 12 PM stays 12, any other PM hour gains 12. The output is built
// textually, so an implausible matched hour flows through to the pipeline's
// timestamp validation instead of being silently normalized.
var timePatterns = []timePattern{
	{
		re: regexp.MustCompile(`(\d{1,2})\s*(?:pm)`),
		build: func(date string, m []string) string {
			h := atoi(m[1])
			if h != 12 {
				h += 12
			}
			return fmt.Sprintf("%sT%02d:00:00+05:30", date, h)
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2})\s*(?:am)`),
		build: func(date string, m []string) string {
			h := atoi(m[1])
			if h == 12 {
				h = 0
			}
			return fmt.Sprintf("%sT%02d:00:00+05:30", date, h)
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(?:pm)`),
		build: func(date string, m []string) string {
			h := atoi(m[1])
			if h != 12 {
				h += 12
			}
			return fmt.Sprintf("%sT%02d:%02d:00+05:30", date, h, atoi(m[2]))
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(?:am)`),
		build: func(date string, m []string) string {
			h := atoi(m[1])
			if h == 12 {
				h = 0
			}
			return fmt.Sprintf("%sT%02d:%02d:00+05:30", date, h, atoi(m[2]))
		},
	},
}

// ParseTimeExpression extracts a start timestamp from free text, anchored to
// now's date in the fixed offset. Returns TimeUnknown when no pattern
// matches; it never fails.
func ParseTimeExpression(message string, now time.Time) string {
	lower := strings.ToLower(message)
	date := now.In(Location).Format("2006-01-02")

	for _, p := range timePatterns {
		if m := p.re.FindStringSubmatch(lower); m != nil {
			return p.build(date, m)
		}
	}
	return models.TimeUnknown
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
