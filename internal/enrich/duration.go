package enrich

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel replaces a duration that cannot be computed: missing or
// unparseable timestamps, or a non-positive elapsed span. A negative
// duration is never emitted.
const Sentinel = "N/A"

// timestampLayouts are the formats the provider API has been observed to
// return. Epoch seconds are handled separately.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ElapsedBetween computes the formatted duration between two upstream
// timestamps, or Sentinel when it cannot be computed safely.
func ElapsedBetween(created, updated string) string {
	from, ok := parseTimestamp(created)
	if !ok {
		return Sentinel
	}
	to, ok := parseTimestamp(updated)
	if !ok {
		return Sentinel
	}

	elapsed := to.Sub(from)
	if elapsed <= 0 {
		return Sentinel
	}
	return FormatElapsed(elapsed)
}

// FormatElapsed renders a duration as "<minutes> Minutes <seconds> Seconds",
// both floored.
func FormatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%d Minutes %d Seconds", ms/60000, (ms%60000)/1000)
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil && epoch > 0 {
		return time.Unix(epoch, 0).UTC(), true
	}

	return time.Time{}, false
}
