package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[ T](\d{2}:\d{2})(?::\d{2})?$`)
	reTimeOnly = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// parseValue parses a seed value for an editor:
// - YYYY-MM-DD (midnight)
// - YYYY-MM-DD HH:MM (seconds are accepted and dropped)
// - HH:MM (on the reference date from now)
// - RFC3339 / RFC3339Nano (converted to loc)
//
// An empty string yields nil.
func parseValue(s string, loc *time.Location, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	if reDateOnly.MatchString(s) {
		ts, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return nil, err
		}
		return &ts, nil
	}

	if m := reDateTime.FindStringSubmatch(s); m != nil {
		ts, err := time.ParseInLocation("2006-01-02 15:04", m[1]+" "+m[2], loc)
		if err != nil {
			return nil, err
		}
		return &ts, nil
	}

	if reTimeOnly.MatchString(s) {
		hm, err := time.Parse("15:04", s)
		if err != nil {
			return nil, err
		}
		ref := now.In(loc)
		ts := time.Date(ref.Year(), ref.Month(), ref.Day(), hm.Hour(), hm.Minute(), 0, 0, loc)
		return &ts, nil
	}

	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		ts = ts.In(loc)
		return &ts, nil
	}

	return nil, fmt.Errorf("expected YYYY-MM-DD, YYYY-MM-DD HH:MM, HH:MM or RFC3339")
}
