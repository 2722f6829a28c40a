package composition

import (
	"strings"

	"github.com/matscan/matscan/internal/table"
)

// TableKeywords are the header words that mark a composition table.
var TableKeywords = []string{"composition", "chemical", "element", "requirement", "actual", "sample"}

// Classifier decides whether a reconstructed grid encodes a chemical
// composition table. It is a density heuristic, not a structural one:
// a page that merely mentions three of the priority symbols classifies
// positive. That false-positive rate is accepted; the extractor behind
// it degrades to zero records on non-tables.
type Classifier struct {
	// Keywords counted case-insensitively against the flattened grid.
	Keywords []string

	// MinKeywordHits is the keyword count that classifies positive on its own.
	MinKeywordHits int

	// MinSymbolHits is the element-symbol count that classifies positive
	// on its own. Symbols are matched case-sensitively so that prose
	// ("aluminum alloy") does not count as occurrences of Al.
	MinSymbolHits int
}

// NewClassifier creates a classifier with the default keyword list and
// thresholds.
func NewClassifier() *Classifier {
	return &Classifier{
		Keywords:       TableKeywords,
		MinKeywordHits: 2,
		MinSymbolHits:  3,
	}
}

// IsComposition reports whether the grid looks like a composition table.
func (c *Classifier) IsComposition(g table.Grid) bool {
	if g.Empty() {
		return false
	}
	flat := g.Flatten(" ")
	lower := strings.ToLower(flat)

	keywords := 0
	for _, kw := range c.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			keywords++
		}
	}
	if keywords >= c.MinKeywordHits {
		return true
	}

	symbols := 0
	for _, sym := range PriorityElements {
		if strings.Contains(flat, sym) {
			symbols++
		}
	}
	return symbols >= c.MinSymbolHits
}
