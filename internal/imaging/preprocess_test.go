package imaging

import (
	"image"
	"image/color"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	return img
}

func TestPreprocessProducesGrayscale(t *testing.T) {
	in := testImage()
	out := Preprocess(in, DefaultOptions())

	if got, want := out.Bounds().Size(), in.Bounds().Size(); got != want {
		t.Fatalf("output size = %v, want %v", got, want)
	}
	r, g, b, _ := out.At(8, 8).RGBA()
	if r != g || g != b {
		t.Errorf("pixel (8,8) = (%d,%d,%d), want equal channels after grayscale", r, g, b)
	}
}

func TestPreprocessStepsOptional(t *testing.T) {
	in := testImage()
	out := Preprocess(in, Options{})

	if got, want := out.Bounds().Size(), in.Bounds().Size(); got != want {
		t.Fatalf("output size = %v, want %v", got, want)
	}
	r, g, b, _ := out.At(3, 12).RGBA()
	if r != g || g != b {
		t.Errorf("pixel (3,12) = (%d,%d,%d), want equal channels", r, g, b)
	}
}

func TestPreprocessLeavesInputIntact(t *testing.T) {
	in := testImage()
	before := in.At(5, 5)
	Preprocess(in, DefaultOptions())
	if in.At(5, 5) != before {
		t.Error("Preprocess modified its input image")
	}
}
