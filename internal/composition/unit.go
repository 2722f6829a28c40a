package composition

import "strings"

// CompositionUnits lists the percentage-like units composition tables
// use, checked in order; the first substring hit wins.
var CompositionUnits = []string{"wt.%", "wt%", "%", "weight%", "mass%"}

// DefaultUnit is assumed when a table names no unit at all.
const DefaultUnit = "wt.%"

// DetectUnit finds a known unit mentioned anywhere in text.
func DetectUnit(text string) string {
	lower := strings.ToLower(text)
	for _, u := range CompositionUnits {
		if strings.Contains(lower, strings.ToLower(u)) {
			return u
		}
	}
	return DefaultUnit
}

func isPercentUnit(unit string) bool {
	for _, u := range CompositionUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// PlausibleValue reports whether value is believable for unit.
// Percentage readings must land in [0, 100]; small negatives (magnitude
// below 0.1) are tolerated as OCR sign noise. Any other unit accepts any
// non-negative value.
func PlausibleValue(value float64, unit string) bool {
	if isPercentUnit(unit) {
		if value < 0 {
			return -value < 0.1
		}
		return value <= 100
	}
	return value >= 0
}

// plausibleReading extends PlausibleValue to readings without a
// magnitude: a bare trace marker is always acceptable, an empty reading
// never is.
func plausibleReading(r Reading, unit string) bool {
	if !r.HasMagnitude {
		return r.Trace
	}
	return PlausibleValue(r.Magnitude, unit)
}
