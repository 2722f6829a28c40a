package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matscan/matscan/internal/composition"
	"github.com/matscan/matscan/internal/export"
	"github.com/matscan/matscan/internal/imaging"
	"github.com/matscan/matscan/internal/pdfio"
	"github.com/matscan/matscan/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	input := flag.String("input", "", "input file: PDF or image (png, jpg, tiff, bmp, gif)")
	output := flag.String("output", "output.csv", "CSV output path")
	xlsxPath := flag.String("xlsx", "", "also write an XLSX workbook to this path")
	reportPath := flag.String("report", "", "also write a plain-text summary report to this path")
	lang := flag.String("lang", "eng", "Tesseract recognition language")
	workers := flag.Int("workers", 1, "pages processed concurrently")
	minConfidence := flag.Int("min-confidence", 0, "drop OCR fragments below this confidence (0-100)")
	noDenoise := flag.Bool("no-denoise", false, "skip the median denoise step")
	noContrast := flag.Bool("no-contrast", false, "skip the contrast boost step")
	overlayDir := flag.String("overlay-dir", "", "write per-page row overlay PNGs into this directory")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("matscan %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	p := pipeline.New()
	p.Language = *lang
	p.MinConfidence = *minConfidence
	p.Preprocess.Denoise = !*noDenoise
	p.Preprocess.EnhanceContrast = !*noContrast

	if err := run(p, *input, *output, *xlsxPath, *reportPath, *overlayDir, *workers); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// loadPages turns the input file into a list of page images. PDFs
// contribute one image per embedded page scan; a single image file is
// one page.
func loadPages(path string) ([]image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		pages, err := pdfio.ExtractPageImages(path)
		if err != nil {
			return nil, err
		}
		images := make([]image.Image, len(pages))
		for i, pg := range pages {
			images[i] = pg.Image
		}
		return images, nil
	}
	if !imaging.Supported(path) {
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}
	return []image.Image{img}, nil
}

func run(p *pipeline.Pipeline, input, output, xlsxPath, reportPath, overlayDir string, workers int) error {
	images, err := loadPages(input)
	if err != nil {
		return err
	}
	log.Printf("Processing %s (%d page(s))", input, len(images))

	results, err := p.ProcessPages(images, workers)
	if err != nil {
		return err
	}

	var records []composition.Record
	tablesFound := 0
	for _, res := range results {
		if res.IsComposition {
			tablesFound++
		}
		note := ""
		if res.UsedFallback {
			note = " (loose extraction)"
		}
		log.Printf("Page %d: %d fragments, composition table: %v, %d element(s)%s",
			res.Page, res.FragmentCount, res.IsComposition, len(res.Records), note)
		records = append(records, res.Records...)
	}

	if overlayDir != "" {
		if err := writeOverlays(overlayDir, images, results); err != nil {
			return err
		}
	}

	if len(records) == 0 {
		return fmt.Errorf("no composition data found in %s", input)
	}

	if err := export.WriteCSVFile(output, records); err != nil {
		return err
	}
	log.Printf("Wrote %d record(s) to %s", len(records), output)

	if xlsxPath != "" {
		if err := export.WriteXLSXFile(xlsxPath, records); err != nil {
			return err
		}
		log.Printf("Wrote %s", xlsxPath)
	}
	if reportPath != "" {
		s := export.Summary{
			Source:         input,
			PagesProcessed: len(images),
			TablesFound:    tablesFound,
			Records:        records,
			GeneratedAt:    time.Now(),
		}
		if err := export.WriteReportFile(reportPath, s); err != nil {
			return err
		}
		log.Printf("Wrote %s", reportPath)
	}
	return nil
}

func writeOverlays(dir string, images []image.Image, results []*pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, res := range results {
		if len(res.RowGroups) == 0 {
			continue
		}
		out := imaging.RowOverlay(images[i], res.RowGroups)
		name := filepath.Join(dir, fmt.Sprintf("page-%03d-rows.png", res.Page))
		if err := imaging.SavePNG(out, name); err != nil {
			return err
		}
	}
	return nil
}
