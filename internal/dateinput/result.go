package dateinput

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Granularity selects which segments are instantiated.
type Granularity string

const (
	GranularityDate     Granularity = "date"
	GranularityTime     Granularity = "time"
	GranularityDateTime Granularity = "datetime"
)

// ParseGranularity accepts date|time|datetime (case-insensitive); empty means date.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return GranularityDate, nil
	case GranularityDate, GranularityTime, GranularityDateTime:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q (expected date|time|datetime)", ErrUnknownGranularity, s)
	}
}

func (g Granularity) hasDate() bool { return g == GranularityDate || g == GranularityDateTime }
func (g Granularity) hasTime() bool { return g == GranularityTime || g == GranularityDateTime }

// Kind is the state of a composed value.
type Kind int

const (
	Empty Kind = iota
	Invalid
	Valid
)

func (k Kind) String() string {
	switch k {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "empty"
	}
}

// InvalidMarker is the literal reported for Invalid results.
const InvalidMarker = "invalid"

// Result is the composed value: Empty, Invalid, or Valid with a time.
type Result struct {
	Kind Kind
	Time time.Time
}

func EmptyResult() Result { return Result{Kind: Empty} }
func InvalidResult() Result { return Result{Kind: Invalid} }
func ValidResult(t time.Time) Result { return Result{Kind: Valid, Time: t} }

func (r Result) IsValid() bool { return r.Kind == Valid }
func (r Result) IsEmpty() bool { return r.Kind == Empty }

// Ptr returns the time for Valid results and nil otherwise.
func (r Result) Ptr() *time.Time {
	if r.Kind != Valid {
		return nil
	}
	t := r.Time
	return &t
}

func (r Result) Equal(o Result) bool {
	if r.Kind != o.Kind {
		return false
	}
	return r.Kind != Valid || r.Time.Equal(o.Time)
}

func (r Result) String() string {
	switch r.Kind {
	case Valid:
		return r.Time.Format("2006-01-02 15:04")
	case Invalid:
		return InvalidMarker
	default:
		return ""
	}
}

// MarshalJSON encodes Valid as an RFC3339 string, Invalid as "invalid" and
// Empty as null.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case Valid:
		return json.Marshal(r.Time.Format(time.RFC3339))
	case Invalid:
		return json.Marshal(InvalidMarker)
	default:
		return []byte("null"), nil
	}
}

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
