package adms

import (
	"strings"
	"time"
)

// TimeLayout is the wall-clock format terminals use for punch times.
const TimeLayout = "2006-01-02 15:04:05"

const datePrefix = "2006-01-02 "

// ParseLoose accepts TimeLayout with an optional 'T' date/time separator, an
// optional fractional part and an optional zone suffix (Z, +hh:mm, -hhmm).
// The zone is dropped; the result is the wall-clock time as written.
func ParseLoose(s string) (time.Time, bool) {
	s = strings.Replace(strings.TrimSpace(s), "T", " ", 1)
	if len(s) <= len(datePrefix) {
		return ParseExact(s)
	}
	date, clock := s[:len(datePrefix)], s[len(datePrefix):]
	if i := strings.IndexAny(clock, "Zz+-"); i >= 0 {
		clock = clock[:i]
	}
	if i := strings.IndexByte(clock, '.'); i >= 0 {
		clock = clock[:i]
	}
	return ParseExact(date + clock)
}

func ParseExact(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// timeOr falls back to the receipt time when the device value cannot be parsed.
func timeOr(t time.Time, ok bool, receivedAt time.Time) time.Time {
	if !ok {
		return receivedAt.UTC()
	}
	return t
}
