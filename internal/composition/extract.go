package composition

import (
	"regexp"
	"sort"
	"strings"

	"github.com/matscan/matscan/internal/table"
)

// Record is one extracted (element, value, unit) triple. At most one
// record per element symbol is emitted per grid; first occurrence wins.
type Record struct {
	Element string
	Value   Reading
	Unit    string
}

// embeddedNumberRE finds a number embedded in a longer token.
var embeddedNumberRE = regexp.MustCompile(`[\d,\.]+`)

// rowContext is the state shared by the extraction strategies for one row.
type rowContext struct {
	row     []string
	headers []string
	unit    string
	seen    map[string]bool
}

// strategyResult distinguishes three outcomes: the strategy found
// nothing and the next one should run; the strategy identified an unseen
// element but recovered no value, which consumes the row; or the
// strategy produced a full candidate record.
type strategyResult int

const (
	strategyNoMatch strategyResult = iota
	strategyElementOnly
	strategyFound
)

// strategy is one row-extraction approach. All strategies share this
// signature and are tried in a fixed order.
type strategy func(rc rowContext) (string, Reading, strategyResult)

var strategies = []strategy{byLeadingElement, byCellPairs, byHeaderColumns}

// ExtractComposition assembles composition records from a grid that the
// classifier accepted. Per row, the strategies run in order and the
// first that claims the row decides its contribution; a row contributes
// at most one record, and a record survives only if its value is
// plausible for the detected unit. A final pass corrects table-wide
// misplaced-decimal artifacts and sorts by element priority.
func ExtractComposition(g table.Grid) []Record {
	if len(g) < 2 {
		return nil
	}

	headerIdx := headerRowIndex(g)
	headers := g[headerIdx]
	unit := DetectUnit(strings.Join(headers, " "))

	seen := make(map[string]bool)
	var records []Record
	for _, row := range g[headerIdx+1:] {
		if emptyRow(row) {
			continue
		}
		rc := rowContext{row: row, headers: headers, unit: unit, seen: seen}
		elem, value, res := applyStrategies(rc)
		if res != strategyFound || seen[elem] {
			continue
		}
		if !plausibleReading(value, unit) {
			continue
		}
		records = append(records, Record{Element: elem, Value: value, Unit: unit})
		seen[elem] = true
	}

	correctMagnitudes(records)
	sortByPriority(records)
	return records
}

func applyStrategies(rc rowContext) (string, Reading, strategyResult) {
	for _, s := range strategies {
		if elem, value, res := s(rc); res != strategyNoMatch {
			return elem, value, res
		}
	}
	return "", Reading{}, strategyNoMatch
}

// headerRowIndex locates the header among the first three rows: the
// first row mentioning "element" or any priority symbol. Defaults to
// row zero.
func headerRowIndex(g table.Grid) int {
	limit := len(g)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		text := strings.ToLower(strings.Join(g[i], " "))
		if strings.Contains(text, "element") {
			return i
		}
		for _, sym := range PriorityElements {
			if strings.Contains(text, strings.ToLower(sym)) {
				return i
			}
		}
	}
	return 0
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// byLeadingElement handles the common layout: the element symbol in the
// first column, values in the rest. The leftmost value that passes the
// plausibility check is preferred; failing that, the leftmost value of
// any magnitude, to be filtered at append time.
func byLeadingElement(rc rowContext) (string, Reading, strategyResult) {
	if len(rc.row) < 2 {
		return "", Reading{}, strategyNoMatch
	}
	elem, ok := IdentifyElement(rc.row[0])
	if !ok || rc.seen[elem] {
		return "", Reading{}, strategyNoMatch
	}

	var best, loose Reading
	var haveBest, haveLoose bool
	for _, cell := range rc.row[1:] {
		r, ok := NormalizeNumber(cell)
		if !ok {
			continue
		}
		if !haveLoose {
			loose, haveLoose = r, true
		}
		if !haveBest && plausibleReading(r, rc.unit) {
			best, haveBest = r, true
			break
		}
	}
	switch {
	case haveBest:
		return elem, best, strategyFound
	case haveLoose:
		return elem, loose, strategyFound
	}
	return elem, Reading{}, strategyElementOnly
}

// byCellPairs scans every cell for an embedded element symbol and pairs
// it with a number from the same cell, the next cell, or the previous
// cell, in that order.
func byCellPairs(rc rowContext) (string, Reading, strategyResult) {
	lastElem := ""
	for i, cell := range rc.row {
		elem, ok := IdentifyElement(cell)
		if !ok || rc.seen[elem] {
			continue
		}
		lastElem = elem

		var r Reading
		var got bool
		if m := embeddedNumberRE.FindString(cell); m != "" {
			r, got = NormalizeNumber(m)
		} else {
			if i+1 < len(rc.row) {
				r, got = NormalizeNumber(rc.row[i+1])
			}
			if !got && i > 0 {
				r, got = NormalizeNumber(rc.row[i-1])
			}
		}
		if got {
			return elem, r, strategyFound
		}
	}
	if lastElem != "" {
		return lastElem, Reading{}, strategyElementOnly
	}
	return "", Reading{}, strategyNoMatch
}

// byHeaderColumns handles transposed tables whose header row names the
// elements as column titles; the value is read from the same column of
// the current row. Rows whose lead cell names an already-recorded
// element never reach the header scan (they were claimed upstream).
func byHeaderColumns(rc rowContext) (string, Reading, strategyResult) {
	if len(rc.headers) < 2 {
		return "", Reading{}, strategyNoMatch
	}
	if len(rc.row) >= 2 {
		if elem, ok := IdentifyElement(rc.row[0]); ok && rc.seen[elem] {
			return "", Reading{}, strategyNoMatch
		}
	}

	lastElem := ""
	for col, header := range rc.headers {
		elem, ok := IdentifyElement(header)
		if !ok || rc.seen[elem] || col >= len(rc.row) {
			continue
		}
		lastElem = elem
		if r, got := NormalizeNumber(rc.row[col]); got {
			return elem, r, strategyFound
		}
	}
	if lastElem != "" {
		return lastElem, Reading{}, strategyElementOnly
	}
	return "", Reading{}, strategyNoMatch
}

// correctMagnitudes applies the table-wide misplaced-decimal correction:
// a mean above 50 means the whole table lost its decimal points, so
// every value shifts down two places; a mean between 20 and 50 means
// only the outliers above 50 did.
func correctMagnitudes(records []Record) {
	var sum float64
	n := 0
	for _, r := range records {
		if r.Value.HasMagnitude {
			sum += r.Value.Magnitude
			n++
		}
	}
	if n == 0 {
		return
	}

	switch mean := sum / float64(n); {
	case mean > 50:
		for i := range records {
			if records[i].Value.HasMagnitude {
				records[i].Value.Magnitude /= 100
			}
		}
	case mean > 20:
		for i := range records {
			if records[i].Value.HasMagnitude && records[i].Value.Magnitude > 50 {
				records[i].Value.Magnitude /= 100
			}
		}
	}
}

// sortByPriority orders records by the fixed element priority; symbols
// outside the set sort last, stably by discovery order.
func sortByPriority(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return ElementRank(records[i].Element) < ElementRank(records[j].Element)
	})
}
