// Package composition decides whether a reconstructed table encodes a
// chemical-composition record and extracts normalized (element, value,
// unit) triples from it.
//
// OCR output from scanned certificates is pervasively damaged: decimal
// points vanish, commas stand in for points, tokens merge or split, and
// trace readings hide behind "<" markers. Every function in this package
// is therefore total over well-formed input - absence (no match, no
// value, not a table) is a return value, never an error. The heavy
// lifting is a set of hand-tuned heuristics:
//
//   - NormalizeNumber and InferDecimal recover a float from a damaged
//     token, including decimal-placement inference driven by an ordered
//     rule table over the digit magnitude and the trace flag.
//   - IdentifyElement resolves a token against a closed vocabulary of
//     eight priority symbols, correcting known Tesseract confusions.
//   - Classifier accepts or rejects a grid on keyword and symbol density.
//   - ExtractComposition applies three row strategies in fallback order
//     (column-positional, pair-scanning, header-driven) and finishes
//     with a table-wide magnitude correction; ExtractLoose is the
//     last-resort cell scan for structurally degraded tables.
//
// The heuristic thresholds come from the measurement data the system was
// tuned on and are pinned by the package tests; changing them silently
// changes extraction results on real certificates.
package composition
