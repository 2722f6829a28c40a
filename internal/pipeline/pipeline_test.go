package pipeline

import (
	"math"
	"testing"

	"github.com/matscan/matscan/internal/table"
)

func frag(text string, left, top int) table.Fragment {
	return table.Fragment{Text: text, Left: left, Top: top, Width: 60, Height: 20, Confidence: 90}
}

func TestProcessFragmentsExtractsTable(t *testing.T) {
	p := New()
	frags := []table.Fragment{
		frag("Chemical", 10, 100),
		frag("Composition", 300, 100),
		frag("Element", 10, 200),
		frag("wt.%", 300, 200),
		frag("Al", 10, 300),
		frag("653", 300, 300),
	}

	res, err := p.ProcessFragments(1, frags)
	if err != nil {
		t.Fatalf("ProcessFragments() error: %v", err)
	}
	if !res.IsComposition {
		t.Fatal("IsComposition = false, want true")
	}
	if res.UsedFallback {
		t.Error("UsedFallback = true, want false")
	}
	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	rec := res.Records[0]
	if rec.Element != "Al" {
		t.Errorf("element = %q, want Al", rec.Element)
	}
	if math.Abs(rec.Value.Magnitude-6.53) > 1e-9 {
		t.Errorf("value = %v, want 6.53", rec.Value.Magnitude)
	}
	if len(res.RowGroups) != 3 {
		t.Errorf("got %d row groups, want 3", len(res.RowGroups))
	}
}

func TestProcessFragmentsFallback(t *testing.T) {
	// Requirement-style limits live in the row the extractor treats as
	// the header, so structured extraction comes up empty and the loose
	// scan takes over.
	p := New()
	frags := []table.Fragment{
		frag("Chemical Composition", 10, 100),
		frag("Al 0,1-0,3", 300, 100),
		frag("V 3,5-4,5", 600, 100),
		frag("sample requirement", 10, 200),
	}

	res, err := p.ProcessFragments(1, frags)
	if err != nil {
		t.Fatalf("ProcessFragments() error: %v", err)
	}
	if !res.UsedFallback {
		t.Fatal("UsedFallback = false, want true")
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(res.Records))
	}
	if res.Records[0].Element != "Al" || res.Records[1].Element != "V" {
		t.Errorf("records = %v, want Al then V", res.Records)
	}
	if math.Abs(res.Records[0].Value.Magnitude-0.1) > 1e-9 {
		t.Errorf("Al value = %v, want 0.1", res.Records[0].Value.Magnitude)
	}
}

func TestProcessFragmentsNonComposition(t *testing.T) {
	p := New()
	frags := []table.Fragment{
		frag("invoice", 10, 100),
		frag("total", 300, 100),
		frag("1250", 10, 200),
		frag("eur", 300, 200),
	}

	res, err := p.ProcessFragments(1, frags)
	if err != nil {
		t.Fatalf("ProcessFragments() error: %v", err)
	}
	if res.IsComposition {
		t.Error("IsComposition = true for invoice text, want false")
	}
	if len(res.Records) != 0 {
		t.Errorf("got %d records, want 0", len(res.Records))
	}
}

func TestProcessFragmentsRejectsMalformed(t *testing.T) {
	p := New()
	frags := []table.Fragment{
		{Text: "", Left: 10, Top: 100, Width: 60, Height: 20, Confidence: 90},
	}
	if _, err := p.ProcessFragments(1, frags); err == nil {
		t.Fatal("ProcessFragments() = nil error for malformed fragment, want error")
	}
}

func TestProcessFragmentsTooFewRows(t *testing.T) {
	p := New()
	frags := []table.Fragment{
		frag("Al", 10, 100),
		frag("6.53", 300, 100),
	}

	res, err := p.ProcessFragments(1, frags)
	if err != nil {
		t.Fatalf("ProcessFragments() error: %v", err)
	}
	if res.IsComposition || len(res.Records) != 0 {
		t.Errorf("single-row page produced %+v, want no classification", res)
	}
}
