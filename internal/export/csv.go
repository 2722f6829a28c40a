package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/matscan/matscan/internal/composition"
)

var csvHeader = []string{"element_symbol", "value", "unit"}

// FormatValue renders a reading for human-facing output. Trace amounts
// keep their "<" marker, small values get four decimal places so trace
// magnitudes survive rounding, everything else two.
func FormatValue(r composition.Reading) string {
	if !r.HasMagnitude {
		if r.Trace {
			return "<"
		}
		return ""
	}
	var s string
	if r.Magnitude < 0.1 {
		s = fmt.Sprintf("%.4f", r.Magnitude)
	} else {
		s = fmt.Sprintf("%.2f", r.Magnitude)
	}
	if r.Trace {
		return "<" + s
	}
	return s
}

// WriteCSV writes records as CSV with a header row.
func WriteCSV(w io.Writer, records []composition.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{rec.Element, FormatValue(rec.Value), rec.Unit}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records to the named file, creating or
// truncating it.
func WriteCSVFile(path string, records []composition.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
