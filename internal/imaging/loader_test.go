package imaging

import "testing"

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"scan.png", true},
		{"scan.PNG", true},
		{"scan.tiff", true},
		{"scan.tif", true},
		{"scan.jpeg", true},
		{"scan.bmp", true},
		{"cert.pdf", false},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.png"); err == nil {
		t.Fatal("Load() = nil error for missing file, want error")
	}
}
