package dateinput

// Rules toggles normalizations applied to committed segment values.
type Rules struct {
	// LegacyZeroBump rewrites a committed lone "0" in a segment whose minimum
	// is 1 (day, month) to "1", the way the legacy widget behaved. Off by
	// default; see DESIGN.md.
	LegacyZeroBump bool
}

func (r Rules) apply(id SegmentID, v string) string {
	if r.LegacyZeroBump {
		v = legacyZeroBump(id, v)
	}
	return v
}

func legacyZeroBump(id SegmentID, v string) string {
	if id != SegmentDay && id != SegmentMonth {
		return v
	}
	if v == "0" {
		return "1"
	}
	return v
}
