package leave

import (
	"fmt"
	"strings"
	"time"
)

// ZeroDuration is rendered whenever the end is not after the start.
const ZeroDuration = "0 days 0 hours 0 minutes"

const day = 24 * time.Hour

// ParseTimestamp parses v in TimeLayout. Surrounding whitespace is ignored.
// Times are read as wall-clock values; no zone conversion happens.
func ParseTimestamp(v string) (time.Time, error) {
	return time.Parse(TimeLayout, strings.TrimSpace(v))
}

// FormatTimestamp renders t in TimeLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

// ComputeDuration returns the human readable span between start and end.
// ok is false when either timestamp does not parse; callers keep their
// previous value in that case.
func ComputeDuration(start, end string) (string, bool) {
	s, err := ParseTimestamp(start)
	if err != nil {
		return "", false
	}
	e, err := ParseTimestamp(end)
	if err != nil {
		return "", false
	}
	return FormatDuration(e.Sub(s)), true
}

// FormatDuration floors d to whole days, hours and minutes. Seconds are
// dropped and non-positive spans clamp to ZeroDuration.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return ZeroDuration
	}

	days := d / day
	d %= day

	hours := d / time.Hour
	d %= time.Hour

	minutes := d / time.Minute

	return fmt.Sprintf("%d days %d hours %d minutes", days, hours, minutes)
}
