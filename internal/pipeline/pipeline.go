package pipeline

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/matscan/matscan/internal/composition"
	"github.com/matscan/matscan/internal/imaging"
	"github.com/matscan/matscan/internal/ocr"
	"github.com/matscan/matscan/internal/table"
)

// Result holds everything extracted from one page.
type Result struct {
	Page          int
	FragmentCount int
	IsComposition bool
	Records       []composition.Record
	RowGroups     [][]table.Fragment
	UsedFallback  bool
}

// Pipeline runs page images through recognition and extraction.
// The zero value is not usable; call New.
type Pipeline struct {
	// Language is the recognition language passed to Tesseract.
	Language string
	// MinConfidence drops fragments the engine is less sure about.
	MinConfidence int
	// Preprocess controls raster cleanup before recognition.
	Preprocess imaging.Options
	// MinRecords is the threshold below which the loose fallback
	// extractor gets a chance to do better.
	MinRecords int

	reconstructor *table.Reconstructor
	classifier    *composition.Classifier
}

// New returns a Pipeline with defaults suitable for scanned
// certificates.
func New() *Pipeline {
	return &Pipeline{
		Language:      "eng",
		MinConfidence: 0,
		Preprocess:    imaging.DefaultOptions(),
		MinRecords:    3,
		reconstructor: table.NewReconstructor(),
		classifier:    composition.NewClassifier(),
	}
}

// ProcessFragments reconstructs a table from raw fragments and extracts
// composition records from it. When structured extraction finds fewer
// than MinRecords, the loose extractor runs too and its output is used
// if it found more.
func (p *Pipeline) ProcessFragments(page int, fragments []table.Fragment) (*Result, error) {
	if err := table.ValidateFragments(fragments); err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}

	res := &Result{Page: page, FragmentCount: len(fragments)}
	res.RowGroups = p.reconstructor.GroupRows(fragments)

	grid := p.reconstructor.Reconstruct(fragments)
	if len(grid) < 2 {
		return res, nil
	}

	res.IsComposition = p.classifier.IsComposition(grid)
	if !res.IsComposition {
		return res, nil
	}

	res.Records = composition.ExtractComposition(grid)
	if len(res.Records) < p.MinRecords {
		if loose := composition.ExtractLoose(grid); len(loose) > len(res.Records) {
			res.Records = loose
			res.UsedFallback = true
		}
	}
	return res, nil
}

// ProcessImage preprocesses a page image, recognizes it, and extracts
// composition records.
func (p *Pipeline) ProcessImage(page int, img image.Image) (*Result, error) {
	prepared := imaging.Preprocess(img, p.Preprocess)

	tmp, err := ocr.SaveImageTemp(prepared, "matscan-page")
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}
	defer os.Remove(tmp)

	fragments, err := ocr.Recognize(tmp, p.Language, p.MinConfidence)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}
	return p.ProcessFragments(page, fragments)
}

// ProcessPages runs every page through ProcessImage, fanning out over a
// worker pool when workers is greater than one. Results keep page
// order. The first page error aborts the run.
func (p *Pipeline) ProcessPages(images []image.Image, workers int) ([]*Result, error) {
	results := make([]*Result, len(images))

	if workers < 2 || len(images) < 2 {
		for i, img := range images {
			res, err := p.ProcessImage(i+1, img)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, img := range images {
		i, img := i, img
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			res, err := p.ProcessImage(i+1, img)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[i] = res
		}); err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit page %d: %w", i+1, err)
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
