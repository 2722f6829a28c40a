package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSXFile(path, sampleRecords()); err != nil {
		t.Fatalf("WriteXLSXFile() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell string
		want string
	}{
		{"A1", "element_symbol"},
		{"B1", "value"},
		{"C1", "unit"},
		{"A2", "Al"},
		{"B2", "6.53"},
		{"C2", "wt.%"},
		{"B4", "<0.0010"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(xlsxSheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error: %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}
