package timezone

import (
	"strings"
	"sync/atomic"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Toronto"

const DateLayout = "2006-01-02"

var configured atomic.Value

// SetDefault replaces the service-wide zone, ignoring unknown names.
func SetDefault(tz string) {
	if IsValid(tz) {
		configured.Store(tz)
	}
}

func current() string {
	if tz, ok := configured.Load().(string); ok {
		return tz
	}
	return DefaultTimezone
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(current()))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate reads a YYYY-MM-DD value at midnight in the service zone. An
// empty string gives nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, Location(current()))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
