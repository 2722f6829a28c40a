package pdfio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// PageImage is a decoded page scan together with the 1-based page number
// it was extracted from.
type PageImage struct {
	Page  int
	Image image.Image
}

// ExtractPageImages pulls the embedded raster images out of a scanned
// PDF, one per page in page order. Certificates produced by scanning
// hardware store each page as a single full-page image XObject, so the
// decoded XObjects stand in for the page renders.
//
// Images that cannot be decoded are skipped. An error is returned only
// when the document yields no usable images at all.
func ExtractPageImages(path string) ([]PageImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	var pages []PageImage
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		imgs, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
		if err != nil {
			continue
		}
		objNrs := make([]int, 0, len(imgs))
		for objNr := range imgs {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)
		for _, objNr := range objNrs {
			img, _, err := image.Decode(imgs[objNr])
			if err != nil {
				continue
			}
			pages = append(pages, PageImage{Page: pageNr, Image: img})
		}
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no images found in %s", path)
	}
	return pages, nil
}
