package file

import (
	"slices"
	"strings"

	"github.com/ge-editor/gecore/define"
)

// rows is the line storage of a File.
// Every method is bounds checked and reports false instead of panicking.
type rows []Row

// newRows returns storage holding a single empty line.
func newRows() rows {
	r := make(rows, 1, 64)
	r[0] = Row{}
	return r
}

// rowsFromStrings builds storage from lines, keeping at least one line.
func rowsFromStrings(lines []string) rows {
	if len(lines) == 0 {
		return newRows()
	}
	r := make(rows, len(lines))
	for i, s := range lines {
		r[i] = Row(s)
	}
	return r
}

// InsertRow inserts a new line at the specified index
func (r *rows) InsertRow(rowIndex int, newRow Row) bool {
	if rowIndex < 0 || rowIndex > len(*r) {
		return false
	}
	*r = slices.Insert(*r, rowIndex, newRow)
	return true
}

// SetRow sets the content of a specific line by index
func (r *rows) SetRow(rowIndex int, row Row) bool {
	if rowIndex < 0 || rowIndex >= len(*r) {
		return false
	}
	(*r)[rowIndex] = row
	return true
}

// GetRow retrieves a line by index.
// The returned slice must not be modified.
func (r rows) GetRow(rowIndex int) (Row, bool) {
	if rowIndex < 0 || rowIndex >= len(r) {
		return nil, false
	}
	return r[rowIndex], true
}

// Row is GetRow without the range report; out of range yields an empty Row.
func (r rows) Row(rowIndex int) Row {
	row, _ := r.GetRow(rowIndex)
	return row
}

// RemoveRow removes a line. The last remaining line is never removed.
func (r *rows) RemoveRow(rowIndex int) bool {
	if rowIndex < 0 || rowIndex >= len(*r) || len(*r) == 1 {
		return false
	}
	*r = slices.Delete(*r, rowIndex, rowIndex+1)
	return true
}

func (r rows) IsLastRow(rowIndex int) bool {
	return len(r)-1 == rowIndex
}

// LenRows returns the number of lines
func (r rows) LenRows() int {
	return len(r)
}

// InsertToCol inserts runes into a line at the specified position
func (r *rows) InsertToCol(rowIndex int, insertIndex int, data []rune) bool {
	if rowIndex < 0 || rowIndex >= len(*r) {
		return false
	}
	if insertIndex < 0 || insertIndex > len((*r)[rowIndex]) {
		return false
	}
	(*r)[rowIndex] = slices.Insert((*r)[rowIndex], insertIndex, data...)
	return true
}

// AddToRow appends runes to a line
func (r *rows) AddToRow(rowIndex int, data []rune) bool {
	if rowIndex < 0 || rowIndex >= len(*r) {
		return false
	}
	(*r)[rowIndex] = append((*r)[rowIndex], data...)
	return true
}

// RowLength returns the number of runes of a line, 0 when out of range.
func (r rows) RowLength(rowIndex int) int {
	if rowIndex < 0 || rowIndex >= len(r) {
		return 0
	}
	return len(r[rowIndex])
}

func (r rows) String(rowIndex int) (string, bool) {
	if rowIndex < 0 || rowIndex >= len(r) {
		return "", false
	}
	return string(r[rowIndex]), true
}

// Strings returns a copy of all lines.
func (r rows) Strings() []string {
	ss := make([]string, len(r))
	for i, row := range r {
		ss[i] = string(row)
	}
	return ss
}

// Join returns all lines joined with sep.
func (r rows) Join(sep string) string {
	var sb strings.Builder
	for i, row := range r {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Text joins all lines with LF.
func (r rows) Text() string {
	return r.Join(string(rune(define.LF)))
}

// LenChars returns the number of runes in the document, excluding line terminators.
func (r rows) LenChars() int {
	n := 0
	for _, row := range r {
		n += len(row)
	}
	return n
}

// ClampCursor limits c to a valid caret position.
// Before the first line is the beginning of the document, after the last line its end.
func (r rows) ClampCursor(c Cursor) Cursor {
	if c.RowIndex < 0 {
		return Cursor{}
	}
	if c.RowIndex >= len(r) {
		last := len(r) - 1
		return Cursor{RowIndex: last, ColIndex: len(r[last])}
	}
	c.ColIndex = r[c.RowIndex].clampCol(c.ColIndex)
	return c
}

// equalStrings reports whether the content equals ss line by line.
func (r rows) equalStrings(ss []string) bool {
	if len(r) != len(ss) {
		return false
	}
	for i, row := range r {
		if string(row) != ss[i] {
			return false
		}
	}
	return true
}
