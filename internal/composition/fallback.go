package composition

import (
	"regexp"
	"strings"

	"github.com/matscan/matscan/internal/table"
)

// looseNumberRE additionally admits a hyphenated range ("0,1-0,3"), the
// way specification tables print requirement limits.
var looseNumberRE = regexp.MustCompile(`[\d,\.]+(?:-[\d,\.]+)?`)

// ExtractLoose is the fallback extractor for grids too degraded for
// positional reasoning: it scans every cell of every row independently,
// pairing any recognized element with a number found in the same cell.
// Ranges contribute their lower bound. Precision is traded for recall;
// the caller invokes this only when ExtractComposition came up short.
func ExtractLoose(g table.Grid) []Record {
	unit := DetectUnit(g.Flatten(" "))

	seen := make(map[string]bool)
	var records []Record
	for _, row := range g {
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			elem, ok := IdentifyElement(cell)
			if !ok || seen[elem] {
				continue
			}
			m := looseNumberRE.FindString(cell)
			if m == "" {
				continue
			}
			value, ok := rangeLowerBound(m)
			if !ok || !plausibleReading(value, unit) {
				continue
			}
			records = append(records, Record{Element: elem, Value: value, Unit: unit})
			seen[elem] = true
		}
	}

	sortByPriority(records)
	return records
}

// rangeLowerBound normalizes a matched number, preferring the first
// bound of a hyphenated range and falling back to the second when the
// first does not parse.
func rangeLowerBound(m string) (Reading, bool) {
	if strings.Contains(m, "-") {
		parts := strings.Split(m, "-")
		if len(parts) == 2 {
			if r, ok := NormalizeNumber(parts[0]); ok {
				return r, true
			}
			return NormalizeNumber(parts[1])
		}
	}
	return NormalizeNumber(m)
}
