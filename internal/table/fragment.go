package table

import (
	"fmt"
	"strings"
)

// Fragment is one OCR-recognized token with its pixel-space bounding box
// and recognition confidence. Fragments are produced by the recognizer,
// consumed once by the Reconstructor, and never mutated.
type Fragment struct {
	Text       string `json:"text"`
	Left       int    `json:"left"`
	Top        int    `json:"top"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Confidence int    `json:"confidence"` // 0-100
}

// yCenter is the vertical midpoint used for row clustering.
func (f Fragment) yCenter() int {
	return f.Top + f.Height/2
}

// Validate reports structural problems with a fragment: empty text,
// negative geometry, or a confidence outside (0, 100]. The recognizer is
// expected to filter these before they reach the reconstruction core, so
// a failure here is caller misuse rather than OCR noise.
func (f Fragment) Validate() error {
	if strings.TrimSpace(f.Text) == "" {
		return fmt.Errorf("fragment has empty text")
	}
	if f.Left < 0 || f.Top < 0 || f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("fragment %q has negative geometry (%d,%d %dx%d)",
			f.Text, f.Left, f.Top, f.Width, f.Height)
	}
	if f.Confidence <= 0 || f.Confidence > 100 {
		return fmt.Errorf("fragment %q has confidence %d outside (0, 100]", f.Text, f.Confidence)
	}
	return nil
}

// ValidateFragments checks every fragment and fails fast on the first
// malformed one.
func ValidateFragments(frags []Fragment) error {
	for i, f := range frags {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("fragment %d: %w", i, err)
		}
	}
	return nil
}
