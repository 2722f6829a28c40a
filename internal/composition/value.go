package composition

import (
	"regexp"
	"strconv"
	"strings"
)

// Reading is the outcome of normalizing one numeric cell.
//
// Trace marks a below-detection-limit reading (a leading "<" in the
// source text). A trace reading may carry no magnitude at all; that
// outcome is deliberate and distinct from "unparseable", which
// NormalizeNumber signals by returning ok=false.
type Reading struct {
	Trace        bool
	Magnitude    float64
	HasMagnitude bool
}

// String renders the reading the way certificates print it: trace values
// keep their "<" marker, a trace with no recovered magnitude is the bare
// marker.
func (r Reading) String() string {
	if !r.HasMagnitude {
		if r.Trace {
			return "<"
		}
		return ""
	}
	s := strconv.FormatFloat(r.Magnitude, 'f', -1, 64)
	if r.Trace {
		return "<" + s
	}
	return s
}

var (
	// digitGapRE finds whitespace the recognizer inserted inside a number.
	digitGapRE = regexp.MustCompile(`(\d)\s+(\d)`)
	// nonNumericRE strips everything but digits and a minus sign.
	nonNumericRE = regexp.MustCompile(`[^0-9-]`)
)

// NormalizeNumber turns a raw cell token into a Reading, repairing the
// OCR damage composition tables typically show: comma decimal
// separators, stray percent signs, whitespace inside digit groups, and
// dropped decimal points (recovered by InferDecimal).
//
// Parsed values above 100 that are not trace readings are assumed to be
// misplaced-decimal artifacts and are scaled back into range rather than
// trusted.
func NormalizeNumber(raw string) (Reading, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Reading{}, false
	}

	trace := strings.HasPrefix(v, "<")
	if trace {
		v = strings.TrimSpace(v[1:])
	}

	v = strings.ReplaceAll(v, ",", ".")
	v = strings.ReplaceAll(v, "%", "")
	v = digitGapRE.ReplaceAllString(v, "$1$2")

	if strings.Contains(v, ".") {
		if num, err := strconv.ParseFloat(v, 64); err == nil {
			if num > 100 && !trace {
				if num > 1000 {
					num /= 1000
				} else {
					num /= 10
				}
			}
			return Reading{Trace: trace, Magnitude: num, HasMagnitude: true}, true
		}
		// More than one dot, or garbage around it: drop the separators
		// and let decimal inference place the point.
		v = strings.ReplaceAll(v, ".", "")
	}

	v = nonNumericRE.ReplaceAllString(v, "")
	if v == "" || v == "-" {
		if trace {
			return Reading{Trace: true}, true
		}
		return Reading{}, false
	}

	num, ok := InferDecimal(v, trace)
	if !ok {
		if trace {
			return Reading{Trace: true}, true
		}
		return Reading{}, false
	}
	return Reading{Trace: trace, Magnitude: num, HasMagnitude: true}, true
}
