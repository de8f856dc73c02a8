package booking

import (
	"fmt"
	"strings"
	"time"
)

// Window is a bookable service period, in minutes since midnight.
// Both ends are inclusive.
type Window struct {
	Name  string
	Start int
	End   int
}

func (w Window) Contains(minute int) bool {
	return minute >= w.Start && minute <= w.End
}

// DefaultWindows are the lunch and dinner services.
var DefaultWindows = []Window{
	{Name: "lunch", Start: 11*60 + 30, End: 14 * 60},
	{Name: "dinner", Start: 17 * 60, End: 22*60 + 30},
}

// Hours decides whether a requested slot can be booked.
//
// ClosedWeekdays is empty by default: the Monday closure shown on the
// website is content only unless BOOKING_CLOSED_WEEKDAYS enables it.
type Hours struct {
	Windows        []Window
	ClosedWeekdays []time.Weekday
}

func NewHours(closed ...time.Weekday) *Hours {
	return &Hours{
		Windows:        DefaultWindows,
		ClosedWeekdays: closed,
	}
}

// IsBookable reports whether hm ("HH:MM") falls inside any window.
// Malformed input is never bookable.
func (h *Hours) IsBookable(hm string) bool {
	minute, ok := minutesSinceMidnight(hm)
	if !ok {
		return false
	}

	for _, w := range h.Windows {
		if w.Contains(minute) {
			return true
		}
	}
	return false
}

// IsOpenOn reports whether date falls on a day the restaurant takes bookings.
func (h *Hours) IsOpenOn(date time.Time) bool {
	for _, d := range h.ClosedWeekdays {
		if date.Weekday() == d {
			return false
		}
	}
	return true
}

// Check applies the closed-day rule and the service windows to a
// validated request.
func (h *Hours) Check(req *Request) error {
	if len(h.ClosedWeekdays) > 0 {
		date, err := time.Parse(DateLayout, req.Date)
		if err != nil {
			return &ValidationError{Field: "date", Message: MsgInvalidDate}
		}
		if !h.IsOpenOn(date) {
			return &ValidationError{Field: "date", Message: MsgClosedDay}
		}
	}

	if !h.IsBookable(req.Time) {
		return &ValidationError{Field: "time", Message: MsgOutsideHours}
	}
	return nil
}

func minutesSinceMidnight(hm string) (int, bool) {
	if !timePattern.MatchString(hm) {
		return 0, false
	}
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// ParseWeekdays reads a comma-separated list such as "monday,tue".
func ParseWeekdays(list string) ([]time.Weekday, error) {
	var out []time.Weekday

	for _, part := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		found := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if name == full || name == full[:3] {
				out = append(out, d)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
	}

	return out, nil
}
