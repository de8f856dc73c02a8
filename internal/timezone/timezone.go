package timezone

import (
	"log/slog"
	"time"
)

// DefaultTimezone is the restaurant's local zone (Ottawa).
const DefaultTimezone = "America/Toronto"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone and then to UTC
// when the zone database has neither.
func Location(tz string) *time.Location {
	for _, name := range []string{tz, DefaultTimezone} {
		if !IsValid(name) {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}

// Clock returns a function reporting the current time in tz. "Today" for
// booking dates is read from this clock.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	if loc.String() != tz {
		slog.Warn("restaurant timezone unavailable, using fallback",
			slog.String("requested", tz),
			slog.String("using", loc.String()),
		)
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}
