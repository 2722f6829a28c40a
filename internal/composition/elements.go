package composition

import "strings"

// PriorityElements is the closed vocabulary of element symbols the system
// recognizes and reports. The slice order is also the output sort order.
var PriorityElements = []string{"Al", "V", "Fe", "C", "N", "O", "Y", "H"}

// ocrCorrections maps tokens Tesseract habitually misreads to their
// canonical element symbol. An empty value marks a token known to be
// recognizer junk. A correction that resolves to a symbol outside
// PriorityElements is discarded and resolution continues with the later
// matching stages.
var ocrCorrections = map[string]string{
	"Kin": "Mn",
	"kin": "Mn",
	"5":   "S",
	"Oe":  "",
	"c":   "C",
	"si":  "Si",
	"cr":  "Cr",
	"ni":  "Ni",
	"mo":  "Mo",
	"cu":  "Cu",
	"nb":  "Nb",
	"al":  "Al",
	"fe":  "Fe",
	"ti":  "Ti",
	"v":   "V",
	"n":   "N",
	"o":   "O",
	"h":   "H",
	"y":   "Y",
}

// ElementRank returns the position of symbol in the priority order.
// Symbols outside the vocabulary rank last.
func ElementRank(symbol string) int {
	for i, s := range PriorityElements {
		if s == symbol {
			return i
		}
	}
	return len(PriorityElements)
}

func isPriority(symbol string) bool {
	return ElementRank(symbol) < len(PriorityElements)
}

// IdentifyElement resolves raw cell text to a symbol from the priority
// set. Resolution order, first match wins: the OCR-confusion correction
// table, exact case-insensitive match, prefix match, substring match.
//
// With a vocabulary of eight short symbols the substring stage can
// misfire on longer tokens ("Balance" contains "al"); that recall over
// precision tradeoff is deliberate, since composition rows are short and
// element-led.
func IdentifyElement(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)

	if corrected, ok := ocrCorrections[text]; ok {
		if corrected == "" {
			return "", false
		}
		if isPriority(corrected) {
			return corrected, true
		}
	}
	if corrected, ok := ocrCorrections[lower]; ok && corrected != "" && isPriority(corrected) {
		return corrected, true
	}

	for _, sym := range PriorityElements {
		if strings.EqualFold(text, sym) {
			return sym, true
		}
	}
	for _, sym := range PriorityElements {
		if strings.HasPrefix(text, sym) || strings.HasPrefix(lower, strings.ToLower(sym)) {
			return sym, true
		}
	}
	for _, sym := range PriorityElements {
		if strings.Contains(text, sym) || strings.Contains(lower, strings.ToLower(sym)) {
			return sym, true
		}
	}
	return "", false
}
