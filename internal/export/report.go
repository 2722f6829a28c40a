package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matscan/matscan/internal/composition"
)

// Summary collects what a processing run produced, for the plain-text
// report written next to the CSV output.
type Summary struct {
	Source         string
	PagesProcessed int
	TablesFound    int
	Records        []composition.Record
	GeneratedAt    time.Time
}

// WriteReport writes a human-readable run summary. The composition
// total is checked against 100% since a full wt.% analysis should sum
// close to it; trace readings are excluded from the total.
func WriteReport(w io.Writer, s Summary) error {
	p := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := p("Material Composition Report\n"); err != nil {
		return err
	}
	if err := p("===========================\n\n"); err != nil {
		return err
	}
	if err := p("Source:          %s\n", s.Source); err != nil {
		return err
	}
	if err := p("Generated:       %s\n", s.GeneratedAt.Format(time.RFC3339)); err != nil {
		return err
	}
	if err := p("Pages processed: %d\n", s.PagesProcessed); err != nil {
		return err
	}
	if err := p("Tables found:    %d\n", s.TablesFound); err != nil {
		return err
	}
	if err := p("Elements found:  %d\n\n", len(s.Records)); err != nil {
		return err
	}

	var total float64
	for _, rec := range s.Records {
		if err := p("  %-3s %10s %s\n", rec.Element, FormatValue(rec.Value), rec.Unit); err != nil {
			return err
		}
		if rec.Value.HasMagnitude && !rec.Value.Trace {
			total += rec.Value.Magnitude
		}
	}

	if len(s.Records) > 0 {
		status := "WARN: total deviates from 100%"
		if total >= 95 && total <= 105 {
			status = "OK"
		}
		if err := p("\nTotal: %.2f%% [%s]\n", total, status); err != nil {
			return err
		}
	}
	return nil
}

// WriteReportFile writes the summary to the named file.
func WriteReportFile(path string, s Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteReport(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
