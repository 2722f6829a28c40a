package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matscan/matscan/internal/table"
)

// RowOverlay renders the reconstructed row grouping over the page image
// for visual inspection: every fragment's bounding box is outlined in
// its row's palette color, so mis-clustered rows stand out immediately.
func RowOverlay(img image.Image, rows [][]table.Fragment) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	palette := rowPalette(len(rows))
	for i, row := range rows {
		for _, f := range row {
			drawBox(out, f.Left, f.Top, f.Width, f.Height, palette[i])
		}
	}
	return out
}

// rowPalette spaces n hues evenly around the color wheel so adjacent
// rows get visibly distinct colors.
func rowPalette(n int) []color.RGBA {
	colors := make([]color.RGBA, n)
	for i := range colors {
		c := colorful.Hsv(float64(i)*360.0/float64(n), 0.85, 0.9)
		r, g, b := c.RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// drawBox outlines a rectangle, clamped to the image bounds.
func drawBox(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for dx := 0; dx <= w; dx++ {
		setInBounds(img, x+dx, y, c)
		setInBounds(img, x+dx, y+h, c)
	}
	for dy := 0; dy <= h; dy++ {
		setInBounds(img, x, y+dy, c)
		setInBounds(img, x+w, y+dy, c)
	}
}

func setInBounds(img *image.RGBA, x, y int, c color.RGBA) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// SavePNG writes img to path as PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
