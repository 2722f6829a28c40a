package composition

import (
	"math"
	"strconv"
)

// decimalRule is one (predicate, transform) entry of the decimal-placement
// inference table. Rules are tried in order; the first match wins, so every
// rule's predicate may assume the preceding ones failed.
type decimalRule struct {
	name  string
	match func(n int64) bool
	scale func(n int64, digits int) float64
}

// traceDecimalRules places the decimal point for trace readings, which
// are assumed to sit in the 0.0001-0.01 range.
var traceDecimalRules = []decimalRule{
	{
		name:  "trace-ones",
		match: func(n int64) bool { return n < 10 },
		scale: func(n int64, _ int) float64 { return float64(n) / 1000 },
	},
	{
		name:  "trace-tens",
		match: func(n int64) bool { return n < 100 },
		scale: func(n int64, _ int) float64 { return float64(n) / 10000 },
	},
	{
		name:  "trace-hundreds",
		match: func(n int64) bool { return n < 1000 },
		scale: func(n int64, _ int) float64 { return float64(n) / 10000 },
	},
	{
		name:  "trace-large",
		match: func(n int64) bool { return true },
		scale: func(n int64, _ int) float64 { return float64(n) / 1000000 },
	},
}

// plainDecimalRules encodes the typical magnitudes of composition
// constituents: most are sub-1%, majors reach the low tens of percent.
// The two-digit split on 30 (19 -> 0.19 but 65 -> 6.5) is an unverified
// heuristic inherited from the measurement data this table was tuned on.
// Do not reorder entries; extraction results change silently.
var plainDecimalRules = []decimalRule{
	{
		name:  "zero",
		match: func(n int64) bool { return n == 0 },
		scale: func(n int64, _ int) float64 { return 0 },
	},
	{
		// A single digit reads as a whole-percent major element.
		name:  "single-digit",
		match: func(n int64) bool { return n < 10 },
		scale: func(n int64, _ int) float64 { return float64(n) },
	},
	{
		// A trailing zero suggests X.0 with the point dropped.
		name:  "tens-trailing-zero",
		match: func(n int64) bool { return n < 100 && n%10 == 0 },
		scale: func(n int64, _ int) float64 { return float64(n) / 10 },
	},
	{
		name:  "tens-low",
		match: func(n int64) bool { return n < 100 && n < 30 },
		scale: func(n int64, _ int) float64 { return float64(n) / 100 },
	},
	{
		name:  "tens-high",
		match: func(n int64) bool { return n < 100 },
		scale: func(n int64, _ int) float64 { return float64(n) / 10 },
	},
	{
		name:  "hundreds",
		match: func(n int64) bool { return n < 1000 },
		scale: func(n int64, _ int) float64 { return float64(n) / 100 },
	},
	{
		name:  "thousands",
		match: func(n int64) bool { return n < 10000 },
		scale: func(n int64, _ int) float64 { return float64(n) / 1000 },
	},
	{
		// Five or more digits read as a high-precision measurement with
		// a single leading integer digit.
		name:  "long",
		match: func(n int64) bool { return true },
		scale: func(n int64, digits int) float64 { return float64(n) / math.Pow(10, float64(digits-1)) },
	},
}

// InferDecimal recovers an implied decimal point from a digit string
// whose separator was lost during recognition. The digit string may
// carry a leading minus; anything else non-numeric is stripped. Returns
// ok=false when no integer remains.
//
// For a given (integer, trace) pair the result is a pure function: the
// rule tables are fixed at init and never consulted conditionally.
func InferDecimal(digits string, trace bool) (float64, bool) {
	clean := nonNumericRE.ReplaceAllString(digits, "")
	if clean == "" || clean == "-" {
		return 0, false
	}
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, false
	}

	rules := plainDecimalRules
	if trace {
		rules = traceDecimalRules
	}
	for _, rule := range rules {
		if rule.match(n) {
			return rule.scale(n, len(clean)), true
		}
	}
	return 0, false // unreachable: the last rule of each table matches everything
}
