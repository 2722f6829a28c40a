// Package ocr wraps the Tesseract OCR engine (via gosseract/v2) to turn
// scanned page images into positioned text fragments.
//
// Tesseract must be installed on the system along with the language data
// for the requested language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Recognition runs at word granularity (Tesseract's RIL_WORD iterator
// level); each word becomes one table.Fragment carrying its bounding box
// and a 0-100 confidence score. Empty words and zero-confidence
// detections never leave this package: the reconstruction core assumes
// clean, non-empty fragments.
//
// OCR is CPU-intensive. A client is created per call, so callers may run
// recognitions for different pages concurrently.
package ocr
