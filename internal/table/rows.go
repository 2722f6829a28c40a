package table

import (
	"sort"
	"strings"
)

// Grid is a reconstructed row-major table of text cells for one page.
// Rows are ordered top to bottom, cells within a row left to right.
// A Grid has no identity beyond the page it came from.
type Grid [][]string

// Empty reports whether the grid has no rows.
func (g Grid) Empty() bool {
	return len(g) == 0
}

// Flatten joins every cell in reading order using sep.
func (g Grid) Flatten(sep string) string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strings.Join(row, sep))
	}
	return b.String()
}

// Reconstructor clusters an unordered set of OCR fragments into a Grid
// using geometric proximity. Tolerances are in pixels at the scan's
// native resolution.
type Reconstructor struct {
	// RowTolerance is the maximum distance between a fragment's vertical
	// center and a row's anchor for the fragment to join that row.
	RowTolerance int

	// MergeTolerance is the maximum horizontal gap between two adjacent
	// fragments for them to be merged into a single cell. This repairs
	// tokens the recognizer split in two.
	MergeTolerance int
}

// NewReconstructor creates a reconstructor with default tolerances,
// tuned for 300 DPI scans.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{
		RowTolerance:   25,
		MergeTolerance: 30,
	}
}

// GroupRows assigns fragments to rows by vertical proximity and returns
// the rows top to bottom, each row's fragments sorted left to right.
//
// Fragments are pre-sorted by vertical center (ties broken by left
// coordinate, then text) before a single anchor-assignment sweep, so the
// grouping is independent of input order. Each row's anchor is the
// vertical center of the fragment that opened it.
func (r *Reconstructor) GroupRows(frags []Fragment) [][]Fragment {
	if len(frags) == 0 {
		return nil
	}

	sorted := make([]Fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if yi, yj := sorted[i].yCenter(), sorted[j].yCenter(); yi != yj {
			return yi < yj
		}
		if sorted[i].Left != sorted[j].Left {
			return sorted[i].Left < sorted[j].Left
		}
		return sorted[i].Text < sorted[j].Text
	})

	var rows [][]Fragment
	anchor := 0
	for i, f := range sorted {
		if i == 0 || f.yCenter()-anchor >= r.RowTolerance {
			rows = append(rows, []Fragment{f})
			anchor = f.yCenter()
			continue
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], f)
	}

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			if row[i].Left != row[j].Left {
				return row[i].Left < row[j].Left
			}
			return row[i].Top < row[j].Top
		})
	}
	return rows
}

// Reconstruct clusters fragments into rows, merges near-adjacent
// fragments within each row into single cells, and drops rows left with
// no cells. Empty input yields an empty Grid, not an error.
func (r *Reconstructor) Reconstruct(frags []Fragment) Grid {
	rows := r.GroupRows(frags)
	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		if cells := r.mergeCells(row); len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	return grid
}

// mergeCells concatenates fragments whose horizontal gap to the previous
// fragment is below MergeTolerance. Merged text keeps no separator: the
// recognizer split one visual token, so the halves are rejoined as-is.
func (r *Reconstructor) mergeCells(row []Fragment) []string {
	var cells []string
	var prev Fragment
	for i, f := range row {
		if i > 0 && f.Left-prev.Left-prev.Width < r.MergeTolerance {
			cells[len(cells)-1] += f.Text
		} else {
			cells = append(cells, f.Text)
		}
		prev = f
	}
	return cells
}
