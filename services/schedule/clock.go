package schedule

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationMinutes is assumed whenever a service duration is absent
// or unparsable. Upstream clients constrain input formats, so the engine
// degrades to a sane default instead of rejecting.
const DefaultDurationMinutes = 60

var durationPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(h|m)[a-z]*`)

// ParseClockTime converts a display time ("9:00 AM", "2:30 pm", "14:30")
// into minutes since midnight. Malformed input returns 0; callers must
// treat 0 as "unparsable" rather than midnight.
func ParseClockTime(s string) int {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0
	}

	meridiem := ""
	for _, m := range []string{"AM", "PM"} {
		if strings.HasSuffix(s, m) {
			meridiem = m
			s = strings.TrimSpace(strings.TrimSuffix(s, m))
			break
		}
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0
	}
	if hour < 0 || minute < 0 || minute > 59 {
		return 0
	}

	switch meridiem {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return 0
	}
	return hour*60 + minute
}

// ParseServiceDuration extracts a duration in minutes from strings like
// "2 hours", "1.5 hrs", "45 mins" or "90m". Unmatched input falls back to
// DefaultDurationMinutes.
func ParseServiceDuration(s string) int {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return DefaultDurationMinutes
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DefaultDurationMinutes
	}
	if strings.EqualFold(m[2], "h") {
		return int(math.Round(amount * 60))
	}
	return int(math.Round(amount))
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not conflict.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// FormatClockTime renders minutes since midnight as a 12-hour display
// time, e.g. 780 -> "1:00 PM".
func FormatClockTime(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
}
