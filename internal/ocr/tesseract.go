package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/matscan/matscan/internal/table"
)

// Recognize performs word-level OCR on an image file and returns the
// recognized words as positioned fragments.
//
// Fragments with empty text or a confidence of zero or below are dropped
// here, so downstream reconstruction always receives well-formed input.
// minConfidence raises that floor further; pass 0 to keep everything
// Tesseract accepted.
func Recognize(imagePath, language string, minConfidence int) ([]table.Fragment, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	if minConfidence < 0 {
		minConfidence = 0
	}
	frags := make([]table.Fragment, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		conf := int(box.Confidence)
		if text == "" || conf <= 0 || conf < minConfidence {
			continue
		}
		frags = append(frags, table.Fragment{
			Text:       text,
			Left:       box.Box.Min.X,
			Top:        box.Box.Min.Y,
			Width:      box.Box.Dx(),
			Height:     box.Box.Dy(),
			Confidence: conf,
		})
	}
	return frags, nil
}

// Version returns the Tesseract version string.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// SaveImageTemp writes img to a temporary PNG file and returns its path.
// Tesseract wants a file path, so in-memory images pass through here.
// The caller is responsible for removing the file.
func SaveImageTemp(img image.Image, prefix string) (string, error) {
	f, err := os.CreateTemp("", prefix+"-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
