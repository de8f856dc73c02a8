package booking

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/everest-cuisine/booking-api/internal/validators"
)

const (
	MinNameLength  = 2
	MaxNameLength  = 100
	MinPartySize   = 1
	MaxPartySize   = 20
	MaxNotesLength = 500

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

	suspiciousNames = []*regexp.Regexp{
		regexp.MustCompile(`^[0-9]+$`),
		regexp.MustCompile(`(?i)^[a-z]{1,2}$`),
		regexp.MustCompile(`(?i)^test`),
		regexp.MustCompile(`(?i)^admin`),
	}
)

// payload is the view rules evaluate against.
type payload struct {
	raw   Raw
	today time.Time
}

func (p payload) present(key string) bool {
	v, ok := p.raw[key]
	return ok && v != nil
}

func (p payload) isString(key string) bool {
	_, ok := p.raw[key].(string)
	return ok
}

func (p payload) str(key string) string {
	s, _ := p.raw[key].(string)
	return s
}

// optionalString accepts a missing field, null or a string.
func (p payload) optionalString(key string) bool {
	return !p.present(key) || p.isString(key)
}

// rule is a single predicate over the payload and the message reported
// when it does not hold.
type rule struct {
	field   string
	message string
	holds   func(p payload) bool
}

// rules run top to bottom; the first one that does not hold decides the error.
// Rules for a field assume every earlier rule for that field held.
var rules = []rule{
	{"name", MsgNameRequired, func(p payload) bool { return p.isString("name") }},
	{"name", MsgInvalidNameFormat, func(p payload) bool { return !IsSuspiciousName(p.str("name")) }},
	{"name", MsgNameTooShort, func(p payload) bool { return utf8.RuneCountInString(p.str("name")) >= MinNameLength }},
	{"name", MsgNameTooLong, func(p payload) bool { return utf8.RuneCountInString(p.str("name")) <= MaxNameLength }},

	{"email", MsgEmailRequired, func(p payload) bool { return p.isString("email") && p.str("email") != "" }},
	{"email", MsgInvalidEmail, func(p payload) bool { return validators.IsEmail(p.str("email")) }},

	{"phone", MsgPhoneRequired, func(p payload) bool { return p.isString("phone") && p.str("phone") != "" }},
	{"phone", MsgInvalidPhone, func(p payload) bool { return validators.IsCanadianPhone(p.str("phone")) }},

	{"date", MsgDateRequired, func(p payload) bool { return p.isString("date") && p.str("date") != "" }},
	{"date", MsgInvalidDate, func(p payload) bool {
		_, err := time.Parse(DateLayout, p.str("date"))
		return err == nil
	}},
	{"date", MsgDateInPast, func(p payload) bool {
		d, _ := time.ParseInLocation(DateLayout, p.str("date"), p.today.Location())
		return !d.Before(startOfDay(p.today))
	}},

	{"time", MsgTimeRequired, func(p payload) bool { return p.isString("time") && p.str("time") != "" }},
	{"time", MsgInvalidTime, func(p payload) bool { return timePattern.MatchString(p.str("time")) }},

	{"partySize", MsgPartySizeRequired, func(p payload) bool { return p.present("partySize") }},
	{"partySize", MsgPartySizeNotInt, func(p payload) bool {
		_, ok := wholeNumber(p.raw["partySize"])
		return ok
	}},
	{"partySize", MsgPartySizeTooSmall, func(p payload) bool {
		n, _ := wholeNumber(p.raw["partySize"])
		return n >= MinPartySize
	}},
	{"partySize", MsgPartySizeTooLarge, func(p payload) bool {
		n, _ := wholeNumber(p.raw["partySize"])
		return n <= MaxPartySize
	}},

	{"occasion", MsgOccasionNotText, func(p payload) bool { return p.optionalString("occasion") }},

	{"notes", MsgNotesNotText, func(p payload) bool { return p.optionalString("notes") }},
	{"notes", MsgNotesTooLong, func(p payload) bool { return utf8.RuneCountInString(p.str("notes")) <= MaxNotesLength }},
}

// Validate checks raw against the booking rules and returns the typed
// request. today is the current time in the restaurant's time zone; only
// its calendar date is used. The returned error is always a *ValidationError
// carrying the message of the first rule that failed.
func Validate(raw Raw, today time.Time) (*Request, error) {
	p := payload{raw: raw, today: today}

	for _, r := range rules {
		if !r.holds(p) {
			return nil, &ValidationError{Field: r.field, Message: r.message}
		}
	}

	size, _ := wholeNumber(raw["partySize"])

	return &Request{
		Name:      p.str("name"),
		Email:     p.str("email"),
		Phone:     p.str("phone"),
		Date:      p.str("date"),
		Time:      p.str("time"),
		PartySize: int(size),
		Occasion:  p.str("occasion"),
		Notes:     p.str("notes"),
	}, nil
}

// IsSuspiciousName reports names typical of scripted or throwaway
// submissions: digits only, one or two letters, or a "test"/"admin" prefix.
func IsSuspiciousName(name string) bool {
	for _, re := range suspiciousNames {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// wholeNumber accepts JSON numbers and numeric strings (HTML forms post
// strings) with no fractional part.
func wholeNumber(v any) (int64, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// Clamp so range rules report the bound instead of overflowing.
	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	return int64(f), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
