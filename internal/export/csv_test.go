package export

import (
	"bytes"
	"testing"

	"github.com/matscan/matscan/internal/composition"
)

func sampleRecords() []composition.Record {
	return []composition.Record{
		{Element: "Al", Value: composition.Reading{Magnitude: 6.53, HasMagnitude: true}, Unit: "wt.%"},
		{Element: "Fe", Value: composition.Reading{Magnitude: 0.05, HasMagnitude: true}, Unit: "wt.%"},
		{Element: "Y", Value: composition.Reading{Trace: true, Magnitude: 0.001, HasMagnitude: true}, Unit: "wt.%"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	want := "element_symbol,value,unit\n" +
		"Al,6.53,wt.%\n" +
		"Fe,0.0500,wt.%\n" +
		"Y,<0.0010,wt.%\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteCSV() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		r    composition.Reading
		want string
	}{
		{composition.Reading{Magnitude: 6.53, HasMagnitude: true}, "6.53"},
		{composition.Reading{Magnitude: 25, HasMagnitude: true}, "25.00"},
		{composition.Reading{Magnitude: 0.05, HasMagnitude: true}, "0.0500"},
		{composition.Reading{Trace: true, Magnitude: 0.001, HasMagnitude: true}, "<0.0010"},
		{composition.Reading{Trace: true}, "<"},
		{composition.Reading{}, ""},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.r); got != tt.want {
			t.Errorf("FormatValue(%+v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
