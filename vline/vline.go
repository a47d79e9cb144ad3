package vline

import (
	"sort"

	"github.com/ge-editor/tecore/file"
)

// Vline holds the measured cells of one document row.
type Vline struct {
	cells
	// prefix[i] is the pixel offset of column i; prefix[len(cells)] is the row width.
	prefix []int
}

// Len returns the number of columns of the row.
func (v *Vline) Len() int {
	return len(v.cells)
}

// Width returns the pixel width of the whole row.
func (v *Vline) Width() int {
	return v.prefix[len(v.prefix)-1]
}

// PixelAtColumn returns the pixel offset of colIndex, clamped to the row.
func (v *Vline) PixelAtColumn(colIndex int) int {
	if colIndex <= 0 {
		return 0
	}
	if colIndex >= len(v.cells) {
		return v.Width()
	}
	return v.prefix[colIndex]
}

// ColumnAtPixel returns the caret column nearest to pixel offset x.
// A point past the middle of a character lands after it.
func (v *Vline) ColumnAtPixel(x int) int {
	n := len(v.cells)
	// Largest column whose offset does not exceed x.
	col := sort.Search(n+1, func(i int) bool { return v.prefix[i] > x }) - 1
	if col < 0 {
		return 0
	}
	if col < n {
		w := v.prefix[col+1] - v.prefix[col]
		if x > v.prefix[col]+w/2 {
			col++
		}
	}
	return col
}

// Span returns the pixel offsets of the columns start and end.
func (v *Vline) Span(start, end int) (int, int) {
	return v.PixelAtColumn(start), v.PixelAtColumn(end)
}

// WordAt returns the columns start, end of the run of characters of the same
// class around colIndex. Punctuation is a run of its own.
// A column at the end of the row takes the character before it.
func (v *Vline) WordAt(colIndex int) (int, int) {
	n := len(v.cells)
	if n == 0 {
		return 0, 0
	}
	colIndex = max(0, min(colIndex, n-1))
	class := v.GetCell(colIndex).Class()
	if !class.Groupable() {
		return colIndex, colIndex + 1
	}
	start, end := colIndex, colIndex+1
	for start > 0 && v.GetCell(start-1).Class() == class {
		start--
	}
	for end < n && v.GetCell(end).Class() == class {
		end++
	}
	return start, end
}

// Measure the row.
func (v *Vline) calc(row file.Row, m Measurer) {
	v.cells.make(row.LenCh())
	if cap(v.prefix) < row.LenCh()+1 {
		v.prefix = make([]int, row.LenCh()+1)
	}
	v.prefix = v.prefix[:row.LenCh()+1]
	v.prefix[0] = 0

	x := 0
	for index := 0; index < row.LenCh(); index++ {
		c := &v.cells[index]
		updateCell(c, row.Ch(index), x, m)
		x += c.GetCellWidth()
		v.prefix[index+1] = x
	}
}

// newVline measures row with m.
func newVline(row file.Row, m Measurer) *Vline {
	v := &Vline{}
	v.calc(row, m)
	return v
}
