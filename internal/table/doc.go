// Package table reconstructs logical table structure from positioned OCR
// text fragments.
//
// The recognizer emits an unordered bag of words with pixel bounding
// boxes. Reconstruction happens in two geometric passes: fragments are
// clustered into rows by vertical proximity, then near-adjacent fragments
// within a row are merged back into single cells to undo recognizer
// splits. The output Grid is a plain row-major slice of cell strings with
// no styling, spans, or cell geometry - downstream parsing is purely
// text-based.
//
// Everything in this package is pure and synchronous: no I/O, no shared
// state, and total behavior over well-formed input. Malformed fragments
// are rejected up front by ValidateFragments rather than coerced.
package table
