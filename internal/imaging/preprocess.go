package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Options control the OCR preprocessing steps.
type Options struct {
	// Denoise applies a small median filter to suppress scanner speckle.
	Denoise bool

	// EnhanceContrast boosts contrast to sharpen faded print against the
	// paper background.
	EnhanceContrast bool
}

// DefaultOptions enables the full preprocessing pipeline.
func DefaultOptions() Options {
	return Options{Denoise: true, EnhanceContrast: true}
}

// contrastBoost is the percentage passed to the contrast adjustment.
// Modest on purpose: over-boosting a clean scan erodes thin glyph stems
// and hurts recognition more than low contrast does.
const contrastBoost = 20

// denoiseRadius is the median-filter window size in pixels.
const denoiseRadius = 3

// Preprocess prepares a scanned page for recognition: grayscale
// conversion first, then optional denoising and contrast enhancement.
// The input image is never modified.
func Preprocess(img image.Image, opts Options) image.Image {
	var out image.Image = imaging.Grayscale(img)
	if opts.Denoise {
		out = effect.Median(out, denoiseRadius)
	}
	if opts.EnhanceContrast {
		out = imaging.AdjustContrast(out, contrastBoost)
	}
	return out
}
